package response

import (
	"time"

	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/pkg/i18n"
)

type TaskResponse struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description"`
	Status            task.Status   `json:"status"`
	StatusLabel       string        `json:"status_label"`
	Priority          task.Priority `json:"priority"`
	PriorityLabel     string        `json:"priority_label"`
	Pole              string        `json:"pole"`
	Assignee          *int64        `json:"assignee"`
	AssigneeUsername  *string       `json:"assignee_username,omitempty"`
	CreatedBy         int64         `json:"created_by"`
	CreatedByUsername *string       `json:"created_by_username,omitempty"`
	StartDate         *time.Time    `json:"start_date"`
	DueDate           *time.Time    `json:"due_date"`
	MediaLink         *string       `json:"media_link"`
	Type              *string       `json:"type"`
	IsActive          bool          `json:"is_active"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func NewTaskResponse(t *entity.Task, lang i18n.Lang) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            t.Status,
		StatusLabel:       t.Status.Label(lang),
		Priority:          t.Priority,
		PriorityLabel:     t.Priority.Label(lang),
		Pole:              t.Pole,
		Assignee:          t.Assignee,
		AssigneeUsername:  t.AssigneeUsername,
		CreatedBy:         t.CreatedBy,
		CreatedByUsername: t.CreatedByUsername,
		StartDate:         t.StartDate,
		DueDate:           t.DueDate,
		MediaLink:         t.MediaLink,
		Type:              t.Type,
		IsActive:          t.IsActive,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []entity.Task, lang i18n.Lang) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i], lang))
	}
	return out
}
