package request

import (
	pagingUtil "backend/gestion-platform/app/pkg/util/paging"
)

// PaginationRequest is optional: without a page the whole result set is returned.
type PaginationRequest struct {
	Page int `json:"page" query:"page" form:"page" validate:"omitempty,min=1"`
	Size int `json:"size" query:"size" form:"size" validate:"omitempty,min=1,max=200"`
}

func (p PaginationRequest) Paged() bool {
	return p.Page > 0
}

// ToPage returns nil when no page was requested.
func (p PaginationRequest) ToPage() *pagingUtil.Page {
	if !p.Paged() {
		return nil
	}
	page := pagingUtil.NewPage(p.Page, p.Size)
	return &page
}

// PageSize is the effective size once defaults are applied.
func (p PaginationRequest) PageSize() int {
	if page := p.ToPage(); page != nil {
		return page.Limit
	}
	return 0
}
