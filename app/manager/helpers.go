package manager

import (
	"net/mail"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// missingStrings returns the sorted names of blank values.
func missingStrings(values map[string]string) []string {
	var missing []string
	for field, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

// changedColumns lists the keys of a change set for logging, never their values.
func changedColumns(changes map[string]any) zap.Field {
	columns := make([]string, 0, len(changes))
	for column := range changes {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return zap.Strings("fields", columns)
}
