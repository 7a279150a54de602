// Package pagination slices an ordered list into fixed-size pages with clamped navigation.
package pagination

import "github.com/cosyll/cosyll-web/internal/models"

// Paginator tracks the active page over a list of total items.
// Pages are 1-based; the active page always stays within [1, max(1, LastPage())].
type Paginator struct {
	total    int
	pageSize int
	active   int
}

// New builds a paginator and clamps active into range. A non-positive pageSize means one item per page.
func New(total, pageSize, active int) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	p := &Paginator{total: total, pageSize: pageSize}
	p.GoTo(active)
	return p
}

// LastPage is ceil(total / pageSize); zero for an empty list.
func (p *Paginator) LastPage() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Active returns the current page.
func (p *Paginator) Active() int {
	return p.active
}

// Total returns the number of items being paginated.
func (p *Paginator) Total() int {
	return p.total
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Previous moves one page back; a no-op on the first page.
func (p *Paginator) Previous() {
	p.GoTo(p.active - 1)
}

// Next moves one page forward; a no-op on the last page.
func (p *Paginator) Next() {
	p.GoTo(p.active + 1)
}

// GoTo jumps to page n, clamped into range.
func (p *Paginator) GoTo(n int) {
	last := p.LastPage()
	if last < 1 {
		last = 1
	}
	switch {
	case n < 1:
		n = 1
	case n > last:
		n = last
	}
	p.active = n
}

// Resize swaps the underlying list length and re-clamps the active page,
// so shrinking the list never leaves a non-existent page selected.
func (p *Paginator) Resize(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.GoTo(p.active)
}

// HasPrevious reports whether Previous would move.
func (p *Paginator) HasPrevious() bool {
	return p.active > 1
}

// HasNext reports whether Next would move.
func (p *Paginator) HasNext() bool {
	return p.active < p.LastPage()
}

// Pages returns the page numbers 1..LastPage for direct navigation.
func (p *Paginator) Pages() []int {
	last := p.LastPage()
	pages := make([]int, last)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// ShouldRender is false when there is at most one page.
func (p *Paginator) ShouldRender() bool {
	return p.LastPage() > 1
}

// Bounds returns the half-open [start, end) item range of the active page.
func (p *Paginator) Bounds() (int, int) {
	start := (p.active - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end := start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Meta renders the paginator as response metadata.
func (p *Paginator) Meta() *models.Pagination {
	return &models.Pagination{
		Page:       p.active,
		PageSize:   p.pageSize,
		TotalCount: p.total,
		LastPage:   p.LastPage(),
		Pages:      p.Pages(),
		Render:     p.ShouldRender(),
	}
}

// Slice returns the items of the active page. items must have p.Total() elements.
func Slice[T any](items []T, p *Paginator) []T {
	start, end := p.Bounds()
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
