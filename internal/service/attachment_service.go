package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

type attachmentAPI interface {
	AddAttachment(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.AttachmentRequest) (*models.Attachment, error)
	UpdateAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateAttachmentRequest) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error
}

// AttachmentService edits the supporting documents of a syllabus.
type AttachmentService struct {
	api       attachmentAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttachmentService constructs an AttachmentService.
func NewAttachmentService(api attachmentAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AttachmentService{api: api, cache: cache, validator: validate, logger: logger}
}

// Add attaches a link or uploaded file. Exactly one of url and file must be set.
func (s *AttachmentService) Add(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.AttachmentRequest) (*dto.AttachmentCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid attachment payload"); err != nil {
		return nil, err
	}
	att, err := s.api.AddAttachment(ctx, viewer, syllabusID, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	return attachmentCard(*att), nil
}

// Update patches an attachment.
func (s *AttachmentService) Update(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateAttachmentRequest) (*dto.AttachmentCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid attachment payload"); err != nil {
		return nil, err
	}
	att, err := s.api.UpdateAttachment(ctx, viewer, syllabusID, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	return attachmentCard(*att), nil
}

// Delete removes an attachment.
func (s *AttachmentService) Delete(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.DeleteAttachment(ctx, viewer, syllabusID, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	return nil
}
