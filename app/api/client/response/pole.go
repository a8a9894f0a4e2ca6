package response

import (
	"time"

	"backend/gestion-platform/app/database/entity"
)

type PoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPoleResponse(p *entity.Pole) PoleResponse {
	return PoleResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewPoleResponses(poles []entity.Pole) []PoleResponse {
	out := make([]PoleResponse, 0, len(poles))
	for i := range poles {
		out = append(out, NewPoleResponse(&poles[i]))
	}
	return out
}
