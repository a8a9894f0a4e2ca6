package task

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"backend/gestion-platform/app/pkg/i18n"
)

type Priority string

const (
	PriorityLow       Priority = "Faible"
	PriorityNormal    Priority = "Normal"
	PriorityImportant Priority = "Important"
	PriorityUrgent    Priority = "Urgent"
)

var priorities = []Priority{PriorityLow, PriorityNormal, PriorityImportant, PriorityUrgent}

var priorityLabels = map[Priority]i18n.Labels{
	PriorityLow:       {French: "Faible", Arabic: "منخفضة"},
	PriorityNormal:    {French: "Normal", Arabic: "عادية"},
	PriorityImportant: {French: "Important", Arabic: "مهمة"},
	PriorityUrgent:    {French: "Urgent", Arabic: "عاجلة"},
}

func Priorities() []Priority {
	return append([]Priority(nil), priorities...)
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) Label(lang i18n.Lang) string {
	labels, ok := priorityLabels[p]
	if !ok {
		return string(p)
	}
	return labels.In(lang)
}

func ParsePriority(value string) (Priority, error) {
	v := strings.TrimSpace(value)
	for _, p := range priorities {
		if strings.EqualFold(v, string(p)) || v == priorityLabels[p].Arabic {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown task priority %q", value)
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("task priority must be a string: %w", err)
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *Priority) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Priority(v)
	case []byte:
		*p = Priority(v)
	default:
		return fmt.Errorf("cannot scan TaskPriority from %T", value)
	}
	return nil
}

func (p Priority) Value() (driver.Value, error) {
	return string(p), nil
}
