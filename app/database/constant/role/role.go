package role

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role represents a role in the role-based access control system
type Role string

const (
	// Utilisateur is the default role given at registration
	Utilisateur Role = "utilisateur"
	// Responsable manages the tasks of a pole
	Responsable Role = "responsable"
	// Admin approves accounts and manages poles
	Admin Role = "admin"
)

var roles = []Role{Utilisateur, Responsable, Admin}

func All() []Role {
	return append([]Role(nil), roles...)
}

func (r Role) IsValid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Parse accepts a role name in any case and returns the canonical role.
func Parse(value string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return r, nil
}

// Scan implements the sql.Scanner interface for database scanning
func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("cannot scan Role from %T", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for database storage
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}
