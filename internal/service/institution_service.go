package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

type institutionAPI interface {
	AddInstitution(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.InstitutionRequest) (*models.Institution, error)
	UpdateInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateInstitutionRequest) (*models.Institution, error)
	DeleteInstitution(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error
}

// InstitutionService edits the institution affiliations of a syllabus.
type InstitutionService struct {
	api       institutionAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstitutionService constructs an InstitutionService.
func NewInstitutionService(api institutionAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *InstitutionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &InstitutionService{api: api, cache: cache, validator: validate, logger: logger}
}

// Add attaches a new affiliation.
func (s *InstitutionService) Add(ctx context.Context, viewer *models.Viewer, syllabusID string, req dto.InstitutionRequest) (*dto.InstitutionCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid institution payload"); err != nil {
		return nil, err
	}
	inst, err := s.api.AddInstitution(ctx, viewer, syllabusID, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	return &institutionCards([]models.Institution{*inst})[0], nil
}

// Update patches an affiliation.
func (s *InstitutionService) Update(ctx context.Context, viewer *models.Viewer, syllabusID, id string, req dto.UpdateInstitutionRequest) (*dto.InstitutionCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid institution payload"); err != nil {
		return nil, err
	}
	inst, err := s.api.UpdateInstitution(ctx, viewer, syllabusID, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	return &institutionCards([]models.Institution{*inst})[0], nil
}

// Delete removes an affiliation.
func (s *InstitutionService) Delete(ctx context.Context, viewer *models.Viewer, syllabusID, id string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.DeleteInstitution(ctx, viewer, syllabusID, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	return nil
}
