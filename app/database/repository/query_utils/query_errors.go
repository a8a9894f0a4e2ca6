package util

import (
	"database/sql"
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

func SkipNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// IsUniqueViolation reports a unique_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation)
}

// ConstraintName returns the violated constraint, or "" for other errors.
func ConstraintName(err error) string {
	var postgresErr pgdriver.Error
	if errors.As(err, &postgresErr) {
		return postgresErr.Field('n')
	}
	return ""
}

func hasSQLState(err error, state string) bool {
	var postgresErr pgdriver.Error
	if errors.As(err, &postgresErr) {
		return postgresErr.Field('C') == state
	}
	return false
}
