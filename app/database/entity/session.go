package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        int64      `bun:"id,pk,autoincrement"`
	UserID    int64      `bun:"user_id,notnull"`
	Token     string     `bun:"token,notnull,unique"`
	UserAgent *string    `bun:"user_agent"`
	IPAddress *string    `bun:"ip_address"`
	Revoked   bool       `bun:"revoked,notnull,default:false"`
	ExpiresAt *time.Time `bun:"expires_at"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt *time.Time `bun:"updated_at"`
}

func (s Session) Alias() string {
	return "s"
}
