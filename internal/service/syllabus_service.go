package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/filter"
	"github.com/cosyll/cosyll-web/internal/models"
)

const resourceSyllabi = "syllabi"

type syllabusAPI interface {
	ListSyllabi(ctx context.Context, viewer *models.Viewer) (*models.SyllabusListing, error)
	GetSyllabus(ctx context.Context, viewer *models.Viewer, id string) (*models.Syllabus, error)
	CreateSyllabus(ctx context.Context, viewer *models.Viewer, req dto.CreateSyllabusRequest) (*models.Syllabus, error)
	UpdateSyllabus(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateSyllabusRequest) (*models.Syllabus, error)
	DeleteSyllabus(ctx context.Context, viewer *models.Viewer, id string) error
}

// SyllabusService serves filtered syllabus listings and forwards syllabus edits.
type SyllabusService struct {
	api       syllabusAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ListingConfig
}

// NewSyllabusService constructs a SyllabusService.
func NewSyllabusService(api syllabusAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger, cfg ListingConfig) *SyllabusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SyllabusService{api: api, cache: cache, validator: validate, logger: logger, cfg: cfg}
}

func (s *SyllabusService) listing(ctx context.Context, viewer *models.Viewer) (*models.SyllabusListing, error) {
	return fetchListing(ctx, s.cache, viewer, resourceSyllabi, func(ctx context.Context) (*models.SyllabusListing, error) {
		return s.api.ListSyllabi(ctx, viewer)
	})
}

// List returns one page of syllabus cards matching state, with the facet options of the corpus.
func (s *SyllabusService) List(ctx context.Context, viewer *models.Viewer, state *filter.State, page, limit int) (*ListingPage[dto.SyllabusCard], error) {
	listing, err := s.listing(ctx, viewer)
	if err != nil {
		return nil, err
	}

	view := openView(listing.Syllabi, state, page, s.cfg.size(limit))

	options := listing.Facets
	if options == nil {
		derived := filter.DeriveOptions(listing.Syllabi)
		options = &derived
	}
	facets := FacetOptionCards(*options)

	s.logger.Debug("syllabus listing filtered",
		zap.Int("total", len(listing.Syllabi)),
		zap.Int("visible", len(view.Visible())),
		zap.Int("page", view.Pager().Active()),
	)

	return &ListingPage[dto.SyllabusCard]{
		Items:      SyllabusCards(view.Page(), viewer),
		Pagination: view.Pager().Meta(),
		Facets:     &facets,
		Filters:    view.State().Values(),
	}, nil
}

// Filtered returns every syllabus matching state, unpaginated.
func (s *SyllabusService) Filtered(ctx context.Context, viewer *models.Viewer, state *filter.State) ([]models.Syllabus, error) {
	listing, err := s.listing(ctx, viewer)
	if err != nil {
		return nil, err
	}
	return filter.Apply(listing.Syllabi, state), nil
}

// Get returns the detail card of one syllabus.
func (s *SyllabusService) Get(ctx context.Context, viewer *models.Viewer, id string) (*dto.SyllabusCard, error) {
	syllabus, err := s.api.GetSyllabus(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	card := SyllabusCard(*syllabus, viewer)
	return &card, nil
}

// Create validates and forwards a new syllabus.
func (s *SyllabusService) Create(ctx context.Context, viewer *models.Viewer, req dto.CreateSyllabusRequest) (*dto.SyllabusCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid syllabus payload"); err != nil {
		return nil, err
	}
	created, err := s.api.CreateSyllabus(ctx, viewer, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("syllabus created", zap.String("syllabus_id", created.ID), zap.String("user_id", viewer.UserID))
	card := SyllabusCard(*created, viewer)
	return &card, nil
}

// Update validates and forwards a syllabus patch.
func (s *SyllabusService) Update(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateSyllabusRequest) (*dto.SyllabusCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid syllabus payload"); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateSyllabus(ctx, viewer, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	card := SyllabusCard(*updated, viewer)
	return &card, nil
}

// Delete forwards a syllabus removal.
func (s *SyllabusService) Delete(ctx context.Context, viewer *models.Viewer, id string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.DeleteSyllabus(ctx, viewer, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("syllabus deleted", zap.String("syllabus_id", id), zap.String("user_id", viewer.UserID))
	return nil
}
