package dto

import (
	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/reference"
)

// Label pairs a stored code with its human readable name.
type Label struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// InstitutionCard is an affiliation line of a syllabus or user card.
type InstitutionCard struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Country *Label `json:"country,omitempty"`
	Term    string `json:"term,omitempty"`
	Year    int    `json:"year,omitempty"`
	URL     string `json:"url,omitempty"`
}

// AttachmentCard is one supporting document of a syllabus.
type AttachmentCard struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href,omitempty"`
	Upload      bool   `json:"upload"`
}

// SyllabusCard is the display unit for one syllabus.
type SyllabusCard struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Status       models.Visibility `json:"status"`
	Language     *Label            `json:"language,omitempty"`
	Level        *Label            `json:"academic_level,omitempty"`
	Fields       []Label           `json:"academic_fields,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Institutions []InstitutionCard `json:"institutions,omitempty"`
	Attachments  []AttachmentCard  `json:"attachments,omitempty"`
	Owner        models.UserRef    `json:"owner"`
	IsOwner      bool              `json:"is_owner"`
}

// CollectionCard is the display unit for one collection.
type CollectionCard struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Status        models.Visibility `json:"status"`
	Tags          []string          `json:"tags,omitempty"`
	SyllabusCount int               `json:"syllabus_count"`
	Owner         models.UserRef    `json:"owner"`
	IsOwner       bool              `json:"is_owner"`
}

// CollectionDetail is a collection card with its filtered, paginated members.
type CollectionDetail struct {
	CollectionCard
	Syllabi []SyllabusCard `json:"syllabi"`
}

// UserCard is the public profile of a user.
type UserCard struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Bio             string            `json:"bio,omitempty"`
	URLs            []string          `json:"urls,omitempty"`
	Institutions    []InstitutionCard `json:"institutions,omitempty"`
	SyllabusCount   int               `json:"syllabus_count"`
	CollectionCount int               `json:"collection_count"`
	IsSelf          bool              `json:"is_self"`
}

// UserDetail is a user card with the profile's syllabus and collection cards.
type UserDetail struct {
	UserCard
	Email       string           `json:"email,omitempty"`
	Syllabi     []SyllabusCard   `json:"syllabi,omitempty"`
	Collections []CollectionCard `json:"collections,omitempty"`
}

// FacetOptions lists the selectable values of each facet, with labels.
type FacetOptions struct {
	AcademicLevels []reference.Option `json:"academic_level"`
	AcademicFields []reference.Option `json:"academic_field"`
	AcademicYears  []reference.Option `json:"academic_year"`
	Languages      []reference.Option `json:"language"`
	Tags           []string           `json:"tags"`
}
