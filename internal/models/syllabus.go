package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Visibility marks a syllabus or collection as public or private.
type Visibility string

const (
	VisibilityListed   Visibility = "listed"
	VisibilityUnlisted Visibility = "unlisted"
)

// Valid reports whether v is a known visibility status.
func (v Visibility) Valid() bool {
	return v == VisibilityListed || v == VisibilityUnlisted
}

// AcademicLevel is the degree level a syllabus is taught at.
type AcademicLevel int

const (
	LevelOther AcademicLevel = iota
	LevelBachelor
	LevelMaster
	LevelDoctoral
)

// String renders the level the way filter values are expressed.
func (l AcademicLevel) String() string {
	return strconv.Itoa(int(l))
}

// UnmarshalJSON accepts both numbers and numeric strings; the API has emitted both.
func (l *AcademicLevel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("academic level %q: %w", raw, err)
		}
		*l = AcademicLevel(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("academic level: %w", err)
	}
	*l = AcademicLevel(n)
	return nil
}

// UserRef points at the owner of a record.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Syllabus is a single published course outline.
type Syllabus struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Status         Visibility     `json:"status"`
	Language       string         `json:"language,omitempty"`
	AcademicLevel  *AcademicLevel `json:"academic_level,omitempty"`
	AcademicFields []int          `json:"academic_fields,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Institutions   []Institution  `json:"institutions,omitempty"`
	Attachments    []Attachment   `json:"attachments,omitempty"`
	CreatedBy      UserRef        `json:"created_by"`
}

// Facets exposes the filterable dimensions of the syllabus.
func (s Syllabus) Facets() Facets {
	years := make([]int, 0, len(s.Institutions))
	for _, inst := range s.Institutions {
		if inst.Year != 0 {
			years = append(years, inst.Year)
		}
	}
	return Facets{
		Level:    s.AcademicLevel,
		Language: s.Language,
		Fields:   s.AcademicFields,
		Years:    years,
		Tags:     s.Tags,
	}
}

// SyllabusListing is the payload of the syllabus listing endpoint.
type SyllabusListing struct {
	Syllabi []Syllabus    `json:"syllabi"`
	Facets  *FacetOptions `json:"facets,omitempty"`
}
