// Package reference holds the static lookup tables used to label Cosyll records:
// academic fields (ISCED-F 2013), academic levels, languages and countries.
//
// Lookups never fail. An unknown code renders as "Default: <code>" so a page keeps
// rendering when the API sends a value this table does not know about.
package reference

import "fmt"

// Option is one entry of a selectable list.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func fallbackLabel(code interface{}) string {
	return fmt.Sprintf("Default: %v", code)
}
