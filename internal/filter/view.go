package filter

import "github.com/cosyll/cosyll-web/internal/pagination"

// View is one listing: the full record list, its filter state and the paginated visible subset.
// Every mutation recomputes the visible set from scratch and re-clamps the active page.
type View[T Faceted] struct {
	all     []T
	state   *State
	visible []T
	pager   *pagination.Paginator
}

// NewView builds a view over records with nothing filtered.
func NewView[T Faceted](records []T, pageSize int) *View[T] {
	all := make([]T, len(records))
	copy(all, records)
	v := &View[T]{
		all:   all,
		state: NewState(),
		pager: pagination.New(len(all), pageSize, 1),
	}
	v.recompute()
	return v
}

// SetFacet changes one facet and recomputes.
func (v *View[T]) SetFacet(name Facet, value string) {
	v.state.SetFacet(name, value)
	v.recompute()
}

// SetTagFilter changes one tag list and recomputes.
func (v *View[T]) SetTagFilter(direction TagDirection, tags []string) {
	v.state.SetTagFilter(direction, tags)
	v.recompute()
}

// Use replaces the whole state and recomputes.
func (v *View[T]) Use(state *State) {
	v.state = state.Clone()
	v.recompute()
}

// Reset clears the state and recomputes.
func (v *View[T]) Reset() {
	v.state.Reset()
	v.recompute()
}

// GoTo selects a page, clamped into range.
func (v *View[T]) GoTo(page int) {
	v.pager.GoTo(page)
}

// State returns a copy of the current state.
func (v *View[T]) State() *State {
	return v.state.Clone()
}

// All returns the unfiltered records.
func (v *View[T]) All() []T {
	return v.all
}

// Visible returns the current visible set. Each recompute produces a fresh slice.
func (v *View[T]) Visible() []T {
	return v.visible
}

// Page returns the visible records of the active page.
func (v *View[T]) Page() []T {
	return pagination.Slice(v.visible, v.pager)
}

// Pager exposes the paginator for navigation and metadata.
func (v *View[T]) Pager() *pagination.Paginator {
	return v.pager
}

func (v *View[T]) recompute() {
	v.visible = Apply(v.all, v.state)
	v.pager.Resize(len(v.visible))
}
