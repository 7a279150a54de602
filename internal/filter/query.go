package filter

import (
	"net/url"
	"strings"

	"github.com/cosyll/cosyll-web/internal/reference"
)

const (
	paramTags        = "tags"
	paramExcludeTags = "exclude_tags"
)

// FromQuery builds a state from listing query parameters. Languages may be given by
// code or by name; tag lists are comma separated and may repeat.
func FromQuery(values url.Values) *State {
	s := NewState()
	for _, facet := range Facets {
		value := strings.TrimSpace(values.Get(string(facet)))
		if facet == FacetLanguage && value != "" {
			value = reference.ResolveLanguage(value)
		}
		s.SetFacet(facet, value)
	}
	s.SetTagFilter(TagsInclude, splitList(values[paramTags]))
	s.SetTagFilter(TagsExclude, splitList(values[paramExcludeTags]))
	return s
}

func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		out = append(out, strings.Split(item, ",")...)
	}
	return out
}
