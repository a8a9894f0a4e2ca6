package request

import (
	"backend/gestion-platform/app/pkg/util/optional"
)

type ListUsersRequest struct {
	PaginationRequest
	Role     string `query:"role" validate:"omitempty,role"`
	Pole     string `query:"pole"`
	Email    string `query:"email" validate:"omitempty,email"`
	IsActive string `query:"is_active" validate:"omitempty,boolean"`
	All      bool   `query:"all"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,notblank,max=64"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role,omitempty" validate:"omitempty,role"`
	Pole     *string `json:"pole,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UpdateUserRequest only touches the keys present in the body. A null value
// clears nullable columns.
type UpdateUserRequest struct {
	Username optional.Field[string] `json:"username"`
	Email    optional.Field[string] `json:"email"`
	Password optional.Field[string] `json:"password"`
	Role     optional.Field[string] `json:"role"`
	Pole     optional.Field[string] `json:"pole"`
	Phone    optional.Field[string] `json:"phone"`
	IsActive optional.Field[bool]   `json:"is_active"`
}
