package manager

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInactiveAccount     = errors.New("inactive_account")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)

// FieldsError names the request fields behind a validation or conflict error.
type FieldsError struct {
	Kind   error
	Reason string
	Fields []string
}

func (e *FieldsError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func (e *FieldsError) Is(target error) bool {
	return target == e.Kind
}

func MissingFields(fields ...string) error {
	return &FieldsError{Kind: ErrValidation, Reason: "missing required fields", Fields: fields}
}

func InvalidFields(fields ...string) error {
	return &FieldsError{Kind: ErrValidation, Reason: "invalid fields", Fields: fields}
}

func ConflictingFields(fields ...string) error {
	return &FieldsError{Kind: ErrConflict, Reason: "already exists", Fields: fields}
}

// storeError translates repository errors into the manager taxonomy.
func storeError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s %w", resource, ErrNotFound)
	case errors.Is(err, queryUtil.ErrEmptyUpdate):
		return &FieldsError{Kind: ErrValidation, Reason: queryUtil.ErrEmptyUpdate.Error()}
	case queryUtil.IsUniqueViolation(err):
		return conflictFromConstraint(queryUtil.ConstraintName(err))
	case queryUtil.IsForeignKeyViolation(err):
		return InvalidFields(fieldFromConstraint(queryUtil.ConstraintName(err)))
	default:
		return fmt.Errorf("%s store: %w", resource, err)
	}
}

func conflictFromConstraint(constraint string) error {
	return ConflictingFields(fieldFromConstraint(constraint))
}

// fieldFromConstraint maps postgres default constraint names
// (<table>_<column>_key, <table>_<column>_fkey) back to the column.
func fieldFromConstraint(constraint string) string {
	name := strings.TrimSuffix(strings.TrimSuffix(constraint, "_fkey"), "_key")
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	if name == "" {
		return "unknown"
	}
	return name
}
