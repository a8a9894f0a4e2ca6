package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/constant/task"
)

// stringTag builds a validator for string fields accepted by parse. Other kinds pass.
func stringTag(tag string, parse func(string) error) (validator.Func, string) {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}
		return parse(field.String()) == nil
	}, tag
}

type TaskStatusValidator struct{}

func NewTaskStatusValidator() IValidator {
	return &TaskStatusValidator{}
}

// Register accepts the canonical token and the French or Arabic label.
func (v *TaskStatusValidator) Register() (validator.Func, string) {
	return stringTag("task_status", func(s string) error {
		_, err := task.ParseStatus(s)
		return err
	})
}

type TaskPriorityValidator struct{}

func NewTaskPriorityValidator() IValidator {
	return &TaskPriorityValidator{}
}

func (v *TaskPriorityValidator) Register() (validator.Func, string) {
	return stringTag("task_priority", func(s string) error {
		_, err := task.ParsePriority(s)
		return err
	})
}

type RoleValidator struct{}

func NewRoleValidator() IValidator {
	return &RoleValidator{}
}

func (v *RoleValidator) Register() (validator.Func, string) {
	return stringTag("role", func(s string) error {
		_, err := role.Parse(s)
		return err
	})
}
