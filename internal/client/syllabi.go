package client

import (
	"context"
	"net/http"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

// ListSyllabi fetches every syllabus visible to viewer along with facet metadata, if sent.
func (c *Client) ListSyllabi(ctx context.Context, viewer *models.Viewer) (*models.SyllabusListing, error) {
	var listing models.SyllabusListing
	if err := c.do(ctx, "list_syllabi", http.MethodGet, endpoint("syllabi"), viewer, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetSyllabus fetches one syllabus.
func (c *Client) GetSyllabus(ctx context.Context, viewer *models.Viewer, id string) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := c.do(ctx, "get_syllabus", http.MethodGet, endpoint("syllabi", id), viewer, nil, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

// CreateSyllabus creates a syllabus owned by viewer.
func (c *Client) CreateSyllabus(ctx context.Context, viewer *models.Viewer, req dto.CreateSyllabusRequest) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := c.do(ctx, "create_syllabus", http.MethodPost, endpoint("syllabi"), viewer, req, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

// UpdateSyllabus patches a syllabus.
func (c *Client) UpdateSyllabus(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateSyllabusRequest) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := c.do(ctx, "update_syllabus", http.MethodPatch, endpoint("syllabi", id), viewer, req, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

// DeleteSyllabus removes a syllabus.
func (c *Client) DeleteSyllabus(ctx context.Context, viewer *models.Viewer, id string) error {
	return c.do(ctx, "delete_syllabus", http.MethodDelete, endpoint("syllabi", id), viewer, nil, nil)
}

// AddInstitution attaches an affiliation to a syllabus.
func (c *Client) AddInstitution(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.InstitutionRequest) (*models.Institution, error) {
	var inst models.Institution
	if err := c.do(ctx, "add_institution", http.MethodPost, endpoint("syllabi", syllabusID, "institutions"), viewer, req, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// UpdateInstitution patches an affiliation.
func (c *Client) UpdateInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateInstitutionRequest) (*models.Institution, error) {
	var inst models.Institution
	if err := c.do(ctx, "update_institution", http.MethodPatch, endpoint("syllabi", syllabusID, "institutions", id), viewer, req, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// DeleteInstitution removes an affiliation.
func (c *Client) DeleteInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	return c.do(ctx, "delete_institution", http.MethodDelete, endpoint("syllabi", syllabusID, "institutions", id), viewer, nil, nil)
}

// AddAttachment attaches a link or uploaded file to a syllabus.
func (c *Client) AddAttachment(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.AttachmentRequest) (*models.Attachment, error) {
	var att models.Attachment
	if err := c.do(ctx, "add_attachment", http.MethodPost, endpoint("syllabi", syllabusID, "attachments"), viewer, req, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// UpdateAttachment patches an attachment.
func (c *Client) UpdateAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateAttachmentRequest) (*models.Attachment, error) {
	var att models.Attachment
	if err := c.do(ctx, "update_attachment", http.MethodPatch, endpoint("syllabi", syllabusID, "attachments", id), viewer, req, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// DeleteAttachment removes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	return c.do(ctx, "delete_attachment", http.MethodDelete, endpoint("syllabi", syllabusID, "attachments", id), viewer, nil, nil)
}
