package repository

import (
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/constant/task"
	pagingUtil "backend/gestion-platform/app/pkg/util/paging"
)

// Column filters are decoded with mapstructure; fields tagged "-" are applied by hand.

type UserFilter struct {
	Role     *role.Role `mapstructure:"role,omitempty"`
	Pole     *string    `mapstructure:"pole,omitempty"`
	Email    *string    `mapstructure:"email,omitempty"`
	IsActive *bool      `mapstructure:"is_active,omitempty"`

	Paging *pagingUtil.Page `mapstructure:"-"`
}

type TaskFilter struct {
	Status   *task.Status   `mapstructure:"status,omitempty"`
	Priority *task.Priority `mapstructure:"priority,omitempty"`
	Pole     *string        `mapstructure:"pole,omitempty"`

	// CreatedBy and Assignee are OR'd when both are set.
	CreatedBy *int64 `mapstructure:"-"`
	Assignee  *int64 `mapstructure:"-"`
	// All includes soft-deleted tasks.
	All    bool             `mapstructure:"-"`
	Paging *pagingUtil.Page `mapstructure:"-"`
}

type PoleFilter struct {
	All    bool             `mapstructure:"-"`
	Paging *pagingUtil.Page `mapstructure:"-"`
}

var (
	UserUpdatableColumns = []string{"username", "email", "password", "role", "pole", "phone", "is_active"}
	TaskUpdatableColumns = []string{
		"title", "description", "status", "priority", "pole", "assignee",
		"start_date", "due_date", "media_link", "type", "is_active",
	}
	PoleUpdatableColumns = []string{"name", "slug", "description", "is_active"}
)

type StatusCount struct {
	Status task.Status `bun:"status" json:"status"`
	Count  int         `bun:"count" json:"count"`
}

type PoleCount struct {
	Pole  string `bun:"pole" json:"pole"`
	Count int    `bun:"count" json:"count"`
}
