package dto

import "github.com/cosyll/cosyll-web/internal/models"

// CreateSyllabusRequest is the body forwarded to POST /syllabi/.
type CreateSyllabusRequest struct {
	Title          string                `json:"title" validate:"required,max=200"`
	Description    string                `json:"description,omitempty" validate:"max=5000"`
	Status         models.Visibility     `json:"status" validate:"required,oneof=listed unlisted"`
	Language       string                `json:"language,omitempty" validate:"omitempty,len=2,alpha"`
	AcademicLevel  *models.AcademicLevel `json:"academic_level,omitempty" validate:"omitempty,min=0,max=3"`
	AcademicFields []int                 `json:"academic_fields,omitempty" validate:"omitempty,max=10,dive,min=0,max=1099"`
	Tags           []string              `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// UpdateSyllabusRequest is the body forwarded to PATCH /syllabi/{id}/. Nil fields are left untouched.
type UpdateSyllabusRequest struct {
	Title          *string               `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string               `json:"description,omitempty" validate:"omitempty,max=5000"`
	Status         *models.Visibility    `json:"status,omitempty" validate:"omitempty,oneof=listed unlisted"`
	Language       *string               `json:"language,omitempty" validate:"omitempty,len=2,alpha"`
	AcademicLevel  *models.AcademicLevel `json:"academic_level,omitempty" validate:"omitempty,min=0,max=3"`
	AcademicFields *[]int                `json:"academic_fields,omitempty" validate:"omitempty,max=10,dive,min=0,max=1099"`
	Tags           *[]string             `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// InstitutionRequest is the body forwarded when adding an affiliation to a syllabus.
type InstitutionRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Country int    `json:"country,omitempty" validate:"omitempty,min=1,max=999"`
	Term    string `json:"date_term,omitempty" validate:"omitempty,max=50"`
	Year    int    `json:"date_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	URL     string `json:"url,omitempty" validate:"omitempty,url"`
}

// UpdateInstitutionRequest patches one affiliation.
type UpdateInstitutionRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Country *int    `json:"country,omitempty" validate:"omitempty,min=1,max=999"`
	Term    *string `json:"date_term,omitempty" validate:"omitempty,max=50"`
	Year    *int    `json:"date_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	URL     *string `json:"url,omitempty" validate:"omitempty,url"`
}

// AttachmentRequest adds a link or an already uploaded file to a syllabus.
type AttachmentRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	URL         string `json:"url,omitempty" validate:"required_without=File,omitempty,url"`
	File        string `json:"file,omitempty" validate:"required_without=URL,excluded_with=URL"`
}

// UpdateAttachmentRequest patches one attachment.
type UpdateAttachmentRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
}

// CreateCollectionRequest is the body forwarded to POST /collections/.
type CreateCollectionRequest struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description,omitempty" validate:"max=5000"`
	Status      models.Visibility `json:"status" validate:"required,oneof=listed unlisted"`
	Tags        []string          `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// UpdateCollectionRequest patches a collection.
type UpdateCollectionRequest struct {
	Name        *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=5000"`
	Status      *models.Visibility `json:"status,omitempty" validate:"omitempty,oneof=listed unlisted"`
	Tags        *[]string          `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// UpdateUserRequest patches the caller's own profile.
type UpdateUserRequest struct {
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Bio  *string   `json:"bio,omitempty" validate:"omitempty,max=5000"`
	URLs *[]string `json:"urls,omitempty" validate:"omitempty,max=10,dive,url"`
}
