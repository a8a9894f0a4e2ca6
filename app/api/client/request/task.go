package request

import (
	"backend/gestion-platform/app/pkg/util/numeric"
	"backend/gestion-platform/app/pkg/util/optional"
)

type ListTasksRequest struct {
	PaginationRequest
	Status    string `query:"status" validate:"omitempty,task_status"`
	Priority  string `query:"priority" validate:"omitempty,task_priority"`
	Pole      string `query:"pole"`
	CreatedBy string `query:"created_by" validate:"omitempty,number"`
	Assignee  string `query:"assignee" validate:"omitempty,number"`
	All       bool   `query:"all"`
}

type CreateTaskRequest struct {
	Title       string      `json:"title" validate:"required,notblank"`
	Description *string     `json:"description,omitempty"`
	Status      string      `json:"status" validate:"required,task_status"`
	Priority    string      `json:"priority" validate:"required,task_priority"`
	Pole        string      `json:"pole" validate:"required,notblank"`
	Assignee    *numeric.ID `json:"assignee,omitempty"`
	StartDate   *Date       `json:"start_date,omitempty"`
	DueDate     *Date       `json:"due_date,omitempty"`
	MediaLink   *string     `json:"media_link,omitempty" validate:"omitempty,url"`
	Type        *string     `json:"type,omitempty"`
}

type UpdateTaskRequest struct {
	Title       optional.Field[string]     `json:"title"`
	Description optional.Field[string]     `json:"description"`
	Status      optional.Field[string]     `json:"status"`
	Priority    optional.Field[string]     `json:"priority"`
	Pole        optional.Field[string]     `json:"pole"`
	Assignee    optional.Field[numeric.ID] `json:"assignee"`
	StartDate   optional.Field[Date]       `json:"start_date"`
	DueDate     optional.Field[Date]       `json:"due_date"`
	MediaLink   optional.Field[string]     `json:"media_link"`
	Type        optional.Field[string]     `json:"type"`
	IsActive    optional.Field[bool]       `json:"is_active"`
}
