package request

import (
	"backend/gestion-platform/app/pkg/util/optional"
)

type ListPolesRequest struct {
	PaginationRequest
	All bool `query:"all"`
}

type CreatePoleRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=128"`
	Description *string `json:"description,omitempty"`
}

type UpdatePoleRequest struct {
	Name        optional.Field[string] `json:"name"`
	Description optional.Field[string] `json:"description"`
	IsActive    optional.Field[bool]   `json:"is_active"`
}
