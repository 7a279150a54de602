package filter

import (
	"strconv"
	"strings"

	"github.com/cosyll/cosyll-web/internal/models"
)

// Faceted is implemented by records that can be filtered.
type Faceted interface {
	Facets() models.Facets
}

// IsVisible reports whether record passes every active facet of state.
func IsVisible(record Faceted, state *State) bool {
	return Match(record.Facets(), state)
}

// Match evaluates the facets conjunctively. Field matching is exact: selecting a broad
// field does not match records tagged only with one of its descendants.
func Match(f models.Facets, state *State) bool {
	if state.IsEmpty() {
		return true
	}

	if want := state.Facet(FacetAcademicLevel); want != "" {
		if f.Level == nil || f.Level.String() != want {
			return false
		}
	}

	if want := state.Facet(FacetLanguage); want != "" {
		if !strings.EqualFold(f.Language, want) {
			return false
		}
	}

	if want := state.Facet(FacetAcademicField); want != "" {
		code, err := strconv.Atoi(want)
		if err != nil || !containsInt(f.Fields, code) {
			return false
		}
	}

	if want := state.Facet(FacetAcademicYear); want != "" {
		year, err := strconv.Atoi(want)
		if err != nil || !containsInt(f.Years, year) {
			return false
		}
	}

	if include := state.Tags(TagsInclude); len(include) > 0 {
		if !anyTagIn(f.Tags, include) {
			return false
		}
	}

	if exclude := state.Tags(TagsExclude); len(exclude) > 0 {
		if anyTagIn(f.Tags, exclude) {
			return false
		}
	}

	return true
}

// Apply returns a new slice holding the visible records in their original order.
func Apply[T Faceted](records []T, state *State) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if IsVisible(record, state) {
			out = append(out, record)
		}
	}
	return out
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func anyTagIn(tags, set []string) bool {
	lookup := make(map[string]struct{}, len(set))
	for _, tag := range set {
		lookup[tag] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := lookup[tag]; ok {
			return true
		}
	}
	return false
}
