package models

// Collection is a user-curated, named grouping of syllabi.
type Collection struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      Visibility `json:"status"`
	Tags        []string   `json:"tags,omitempty"`
	Syllabi     []Syllabus `json:"syllabi,omitempty"`
	CreatedBy   UserRef    `json:"created_by"`
}

// Facets exposes the filterable dimensions of the collection. Only tags apply.
func (c Collection) Facets() Facets {
	return Facets{Tags: c.Tags}
}

// CollectionListing is the payload of the collection listing endpoint.
type CollectionListing struct {
	Collections []Collection `json:"collections"`
}
