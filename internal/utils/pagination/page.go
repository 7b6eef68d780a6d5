package pagination

// MaxLimit caps the page size a caller may request.
const MaxLimit = 200

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Normalize fills in defaults and clamps the limit.
func Normalize(page, limit, defaultLimit int) Page {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset is the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes the position of a page in a result set.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta builds the metadata for a page given the total row count.
func NewMeta(p Page, total int) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
