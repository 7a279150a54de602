package models

// Institution is an affiliation of a syllabus or user with a school for a given term.
type Institution struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Country int    `json:"country,omitempty"`
	Term    string `json:"date_term,omitempty"`
	Year    int    `json:"date_year,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Attachment is a supporting document of a syllabus, either a link or an uploaded file.
type Attachment struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	File        string `json:"file,omitempty"`
}

// IsUpload reports whether the attachment references an uploaded file rather than a link.
func (a Attachment) IsUpload() bool {
	return a.File != "" && a.URL == ""
}
