package entity

import (
	"time"

	"github.com/uptrace/bun"

	"backend/gestion-platform/app/database/constant/task"
)

type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          int64         `bun:"id,pk,autoincrement"`
	Title       string        `bun:"title,notnull"`
	Description *string       `bun:"description"`
	Status      task.Status   `bun:"status,notnull,default:'pending'"`
	Priority    task.Priority `bun:"priority,notnull,default:'Normal'"`
	Pole        string        `bun:"pole,notnull"`
	Assignee    *int64        `bun:"assignee"`
	CreatedBy   int64         `bun:"created_by,notnull"`
	StartDate   *time.Time    `bun:"start_date"`
	DueDate     *time.Time    `bun:"due_date"`
	MediaLink   *string       `bun:"media_link"`
	Type        *string       `bun:"type"`
	IsActive    bool          `bun:"is_active,notnull,default:true"`
	CreatedAt   time.Time     `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time     `bun:"updated_at,notnull,default:current_timestamp"`

	AssigneeUsername  *string `bun:"assignee_username,scanonly"`
	CreatedByUsername *string `bun:"created_by_username,scanonly"`
}

func (t Task) Alias() string {
	return "t"
}
