// Package paging provides the uniform pagination contract shared by all
// list endpoints.
package paging

// Page numbers are 1-based. Requests outside the allowed ranges are
// clamped rather than rejected: a page below 1 becomes 1, a page size
// below 1 becomes 1 (so the total-pages division is always defined) and a
// page size above MaxPageSize is silently reduced to MaxPageSize.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request carries the paging parameters of a list request.
type Request struct {
	Page     int `query:"page" json:"page"`
	PageSize int `query:"page_size" json:"page_size"`
}

// Normalize returns a copy of the request with page and page size clamped
// into their allowed ranges. A zero request (no query parameters) pages
// with DefaultPageSize.
func (r Request) Normalize() Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize < 1 {
		r.PageSize = 1
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	return r
}

// Skip returns the number of items to skip for the normalized request.
// It is never negative.
func (r Request) Skip() int {
	n := r.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit returns the effective page size for the normalized request.
func (r Request) Limit() int {
	return r.Normalize().PageSize
}

// Page wraps one page of items together with the paging envelope returned
// to callers.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"total_count"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// New builds the paging envelope for one page of items. TotalCount is the
// item count across all pages under the active query predicate.
func New[T any](items []T, totalCount int64, r Request) *Page[T] {
	n := r.Normalize()
	totalPages := int((totalCount + int64(n.PageSize) - 1) / int64(n.PageSize))
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		CurrentPage: n.Page,
		PageSize:    n.PageSize,
		TotalPages:  totalPages,
		HasPrevious: n.Page > 1,
		HasNext:     n.Page < totalPages,
	}
}

// Map converts a page of one item type into a page of another, keeping
// the envelope untouched.
func Map[T, U any](p *Page[T], f func(T) U) *Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, f(it))
	}
	return &Page[U]{
		Items:       items,
		TotalCount:  p.TotalCount,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}
