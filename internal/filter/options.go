package filter

import (
	"sort"

	"github.com/cosyll/cosyll-web/internal/models"
)

// DeriveOptions collects the distinct facet values present in records.
// Used when the API does not send facet metadata alongside a listing.
func DeriveOptions[T Faceted](records []T) models.FacetOptions {
	languages := map[string]struct{}{}
	levels := map[models.AcademicLevel]struct{}{}
	fields := map[int]struct{}{}
	years := map[int]struct{}{}
	tags := map[string]struct{}{}

	for _, record := range records {
		f := record.Facets()
		if f.Language != "" {
			languages[f.Language] = struct{}{}
		}
		if f.Level != nil {
			levels[*f.Level] = struct{}{}
		}
		for _, code := range f.Fields {
			fields[code] = struct{}{}
		}
		for _, year := range f.Years {
			years[year] = struct{}{}
		}
		for _, tag := range f.Tags {
			tags[tag] = struct{}{}
		}
	}

	opts := models.FacetOptions{
		Languages: sortedStrings(languages),
		Fields:    sortedInts(fields),
		Years:     sortedInts(years),
		Tags:      sortedStrings(tags),
	}
	for level := range levels {
		opts.Levels = append(opts.Levels, level)
	}
	sort.Slice(opts.Levels, func(i, j int) bool { return opts.Levels[i] < opts.Levels[j] })
	return opts
}

func sortedStrings(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
