// Package filter decides which records of a listing are visible for a set of facet selections.
package filter

import (
	"fmt"
	"strings"
)

// Facet names one single-valued filter dimension.
type Facet string

const (
	FacetAcademicLevel Facet = "academic_level"
	FacetAcademicField Facet = "academic_field"
	FacetAcademicYear  Facet = "academic_year"
	FacetLanguage      Facet = "language"
)

// Facets lists every single-valued facet in display order.
var Facets = []Facet{FacetAcademicLevel, FacetAcademicField, FacetAcademicYear, FacetLanguage}

func (f Facet) valid() bool {
	switch f {
	case FacetAcademicLevel, FacetAcademicField, FacetAcademicYear, FacetLanguage:
		return true
	}
	return false
}

// TagDirection selects the include or exclude tag list.
type TagDirection string

const (
	TagsInclude TagDirection = "include"
	TagsExclude TagDirection = "exclude"
)

// State holds the current facet selections of one listing view. The zero value matches everything.
// Unknown facet names and directions are programmer errors and panic.
type State struct {
	facets  map[Facet]string
	include []string
	exclude []string
}

// NewState returns an empty state.
func NewState() *State {
	return &State{}
}

// SetFacet replaces the selected value of one facet. An empty value unsets it.
func (s *State) SetFacet(name Facet, value string) {
	if !name.valid() {
		panic(fmt.Sprintf("filter: unknown facet %q", name))
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(s.facets, name)
		return
	}
	if s.facets == nil {
		s.facets = make(map[Facet]string, len(Facets))
	}
	s.facets[name] = value
}

// SetTagFilter replaces the include or exclude tag list. Blank tags are dropped.
func (s *State) SetTagFilter(direction TagDirection, tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	switch direction {
	case TagsInclude:
		s.include = cleaned
	case TagsExclude:
		s.exclude = cleaned
	default:
		panic(fmt.Sprintf("filter: unknown tag direction %q", direction))
	}
}

// Facet returns the selected value of one facet, "" when unset.
func (s *State) Facet(name Facet) string {
	if s == nil {
		return ""
	}
	return s.facets[name]
}

// Tags returns a copy of the include or exclude list.
func (s *State) Tags(direction TagDirection) []string {
	if s == nil {
		return nil
	}
	var src []string
	switch direction {
	case TagsInclude:
		src = s.include
	case TagsExclude:
		src = s.exclude
	default:
		panic(fmt.Sprintf("filter: unknown tag direction %q", direction))
	}
	if len(src) == 0 {
		return nil
	}
	return append([]string(nil), src...)
}

// Reset clears every selection.
func (s *State) Reset() {
	s.facets = nil
	s.include = nil
	s.exclude = nil
}

// IsEmpty reports whether no facet is active.
func (s *State) IsEmpty() bool {
	return s == nil || (len(s.facets) == 0 && len(s.include) == 0 && len(s.exclude) == 0)
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	out := NewState()
	if s == nil {
		return out
	}
	for name, value := range s.facets {
		out.SetFacet(name, value)
	}
	out.include = s.Tags(TagsInclude)
	out.exclude = s.Tags(TagsExclude)
	return out
}

// Values renders the active selections, keyed by query parameter name.
func (s *State) Values() map[string]string {
	out := make(map[string]string)
	if s == nil {
		return out
	}
	for name, value := range s.facets {
		out[string(name)] = value
	}
	if len(s.include) > 0 {
		out[paramTags] = strings.Join(s.include, ",")
	}
	if len(s.exclude) > 0 {
		out[paramExcludeTags] = strings.Join(s.exclude, ",")
	}
	return out
}
