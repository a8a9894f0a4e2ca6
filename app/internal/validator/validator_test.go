package validator_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/internal/validator"
)

func newValidators() *validator.Validators {
	return validator.NewValidators(runtime.Resource{Logger: zap.NewNop()})
}

func TestValidate_CustomTags(t *testing.T) {
	v := newValidators()

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{
			name: "task with french status label",
			req:  &request.CreateTaskRequest{Title: "t", Status: "En attente", Priority: "Urgent", Pole: "p"},
		},
		{
			name: "task with arabic status label",
			req:  &request.CreateTaskRequest{Title: "t", Status: "مكتملة", Priority: "Faible", Pole: "p"},
		},
		{
			name:    "unknown status",
			req:     &request.CreateTaskRequest{Title: "t", Status: "archived", Priority: "Urgent", Pole: "p"},
			wantErr: true,
		},
		{
			name:    "blank title",
			req:     &request.CreateTaskRequest{Title: "   ", Status: "draft", Priority: "Urgent", Pole: "p"},
			wantErr: true,
		},
		{
			name: "register without role",
			req:  &request.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:    "register with unknown role",
			req:     &request.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "boss"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     &request.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "12345"},
			wantErr: true,
		},
		{
			name: "login by email only",
			req:  &request.LoginRequest{Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:    "login without identifier",
			req:     &request.LoginRequest{Password: "secret1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_ErrorEnvelope(t *testing.T) {
	v := newValidators()

	err := v.Validate(&request.RegisterRequest{Email: "nope", Password: "secret1"})

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	model, ok := httpErr.Message.(*exception.ErrorModel)
	require.True(t, ok)
	assert.Equal(t, int(exception.ErrorCodeValidationFailed), model.Code)
	assert.Contains(t, model.Message, "username")
	assert.Contains(t, model.Message, "email")

	fields := make([]string, 0, len(model.ErrorDetails))
	for _, d := range model.ErrorDetails {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"username", "email"}, fields)
}
