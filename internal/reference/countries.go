package reference

import (
	"sort"
	"strconv"
	"strings"

	"github.com/biter777/countries"
)

// CountryLabel renders an ISO 3166-1 numeric country code.
func CountryLabel(code int) string {
	if c := countries.ByNumeric(code); c.IsValid() {
		return c.String()
	}
	return fallbackLabel(code)
}

// CountryCode maps a country name back to its numeric code. Alpha-2 and alpha-3
// codes are accepted as well.
func CountryCode(name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	c := countries.ByName(trimmed)
	if !c.IsValid() {
		return 0, false
	}
	return int(c), true
}

// Countries returns every country as a selectable option, sorted by name.
func Countries() []Option {
	all := countries.All()
	out := make([]Option, 0, len(all))
	for _, c := range all {
		if !c.IsValid() {
			continue
		}
		out = append(out, Option{Value: strconv.Itoa(int(c)), Label: c.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
