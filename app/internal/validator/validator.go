package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
)

type IValidator interface {
	Register() (validator.Func, string)
}

type Validators struct {
	v          *validator.Validate
	validators []IValidator
}

func NewValidators(res runtime.Resource) *Validators {
	validators := []IValidator{
		NewNotBlankValidator(),
		NewTaskStatusValidator(),
		NewTaskPriorityValidator(),
		NewRoleValidator(),
	}

	v := &Validators{
		v:          validator.New(validator.WithRequiredStructEnabled()),
		validators: validators,
	}
	// Report json names so the client sees the keys it sent
	v.v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	if err := v.Setup(); err != nil {
		panic(err)
	}

	return v
}

func (vl *Validators) Setup() error {
	for _, v := range vl.validators {
		fnc, tag := v.Register()
		if err := vl.v.RegisterValidation(tag, fnc); err != nil {
			return err
		}
	}
	return nil
}

func (vl *Validators) Validate(requestData any) error {
	if err := vl.v.Struct(requestData); err != nil {
		var validationErrs validator.ValidationErrors
		if ok := errors.As(err, &validationErrs); ok {
			details := getDetails(validationErrs)
			httpErr := exception.NewError(
				err,
				http.StatusBadRequest,
				int(exception.ErrorCodeValidationFailed),
				"Validation failed: "+fieldList(details),
			)
			httpErr.Message.(*exception.ErrorModel).ErrorDetails = details
			return httpErr
		}
		return exception.NewBadRequestError(err, int(exception.ErrorCodeValidationFailed), "Validation failed")
	}
	return nil
}

func getDetails(validationErrs validator.ValidationErrors) (out []response.ErrorDetail) {
	for _, vErr := range validationErrs {
		out = append(out, response.ErrorDetail{
			Key:     vErr.Namespace(),
			Field:   vErr.Field(),
			Message: fmt.Sprintf("Failed on the '%s' tag", vErr.Tag()),
		})
	}

	return out
}

func fieldList(details []response.ErrorDetail) string {
	fields := make([]string, 0, len(details))
	seen := make(map[string]bool, len(details))
	for _, d := range details {
		if !seen[d.Field] {
			seen[d.Field] = true
			fields = append(fields, d.Field)
		}
	}
	return strings.Join(fields, ", ")
}

var _ echo.Validator = &Validators{}
