package models

// Facets is the projection of a record onto the filter dimensions.
// Absent dimensions are nil/empty and never match an active facet.
type Facets struct {
	Level    *AcademicLevel
	Language string
	Fields   []int
	Years    []int
	Tags     []string
}

// FacetOptions lists the distinct facet values present in a corpus.
type FacetOptions struct {
	Languages []string        `json:"languages,omitempty"`
	Levels    []AcademicLevel `json:"levels,omitempty"`
	Fields    []int           `json:"fields,omitempty"`
	Years     []int           `json:"years,omitempty"`
	Tags      []string        `json:"tags,omitempty"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int   `json:"total_count"`
	LastPage   int   `json:"last_page"`
	Pages      []int `json:"pages,omitempty"`
	Render     bool  `json:"render"`
}
