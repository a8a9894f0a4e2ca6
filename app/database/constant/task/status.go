package task

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"backend/gestion-platform/app/pkg/i18n"
)

// Status is the closed set of task states. Only the canonical token is stored.
type Status string

const (
	Draft      Status = "draft"
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Rejected   Status = "rejected"
)

var statuses = []Status{Draft, Pending, InProgress, Completed, Rejected}

var statusLabels = map[Status]i18n.Labels{
	Draft:      {French: "Brouillon", Arabic: "مسودة"},
	Pending:    {French: "En attente", Arabic: "قيد الانتظار"},
	InProgress: {French: "En cours", Arabic: "قيد التنفيذ"},
	Completed:  {French: "Terminée", Arabic: "مكتملة"},
	Rejected:   {French: "Rejetée", Arabic: "مرفوضة"},
}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Label(lang i18n.Lang) string {
	labels, ok := statusLabels[s]
	if !ok {
		return string(s)
	}
	return labels.In(lang)
}

// ParseStatus accepts the canonical token, the French label or the Arabic label.
func ParseStatus(value string) (Status, error) {
	v := strings.TrimSpace(value)
	for _, s := range statuses {
		labels := statusLabels[s]
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, labels.French) || v == labels.Arabic {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", value)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("task status must be a string: %w", err)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Status) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = Status(v)
	case []byte:
		*s = Status(v)
	default:
		return fmt.Errorf("cannot scan TaskStatus from %T", value)
	}
	return nil
}

func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}
