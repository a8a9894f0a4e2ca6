package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Pole struct {
	bun.BaseModel `bun:"table:poles,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull,unique"`
	Slug        string    `bun:"slug,notnull,unique"`
	Description *string   `bun:"description"`
	IsActive    bool      `bun:"is_active,notnull,default:true"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (p Pole) Alias() string {
	return "p"
}
