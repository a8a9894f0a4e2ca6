package entity

import (
	"time"

	"github.com/uptrace/bun"

	"backend/gestion-platform/app/database/constant/role"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Username  string    `bun:"username,notnull,unique"`
	Email     string    `bun:"email,notnull,unique"`
	Password  string    `bun:"password,notnull"`
	Role      role.Role `bun:"role,notnull,default:'utilisateur'"`
	Pole      *string   `bun:"pole"`
	Phone     *string   `bun:"phone"`
	IsActive  bool      `bun:"is_active,notnull,default:false"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (u User) Alias() string {
	return "u"
}
