package pagingUtil

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage converts a 1-based page number and size into limit/offset.
func NewPage(page, size int) Page {
	p := Page{Limit: size}
	p.LoadDefault()
	if page < 1 {
		page = 1
	}
	p.Offset = (page - 1) * p.Limit
	return p
}

func (p *Page) LoadDefault() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
