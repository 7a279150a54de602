package reference

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var languageNames = display.English.Languages()

// ISO 639-1 codes with an English name, keyed by code.
var languageLabels = func() map[string]string {
	idx := make(map[string]string)
	buf := make([]byte, 2)
	for a := byte('a'); a <= 'z'; a++ {
		for b := byte('a'); b <= 'z'; b++ {
			buf[0], buf[1] = a, b
			code := string(buf)
			base, err := language.ParseBase(code)
			if err != nil || base.String() != code {
				continue
			}
			if name := languageNames.Name(base); name != "" {
				idx[code] = name
			}
		}
	}
	return idx
}()

var languageCodes = func() map[string]string {
	idx := make(map[string]string, len(languageLabels))
	for code, label := range languageLabels {
		key := strings.ToLower(label)
		if prev, ok := idx[key]; ok && prev < code {
			continue
		}
		idx[key] = code
	}
	return idx
}()

// LanguageLabel renders a language code. Three-letter ISO 639 codes are named too.
func LanguageLabel(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if label, ok := languageLabels[normalized]; ok {
		return label
	}
	if base, err := language.ParseBase(normalized); err == nil && normalized != "und" {
		if name := languageNames.Name(base); name != "" {
			return name
		}
	}
	return fallbackLabel(code)
}

// LanguageCode maps a language name back to its code.
func LanguageCode(name string) (string, bool) {
	code, ok := languageCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// ResolveLanguage accepts either a code or a language name and returns the code.
// Unrecognised input is returned trimmed so it can still match a raw record value.
func ResolveLanguage(input string) string {
	trimmed := strings.TrimSpace(input)
	if _, ok := languageLabels[strings.ToLower(trimmed)]; ok {
		return strings.ToLower(trimmed)
	}
	if code, ok := LanguageCode(trimmed); ok {
		return code
	}
	return trimmed
}

// Languages returns every language as a selectable option, sorted by label.
func Languages() []Option {
	out := make([]Option, 0, len(languageLabels))
	for code, label := range languageLabels {
		out = append(out, Option{Value: code, Label: label})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label == out[j].Label {
			return out[i].Value < out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}
