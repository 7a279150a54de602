package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/filter"
	"github.com/cosyll/cosyll-web/internal/models"
)

const resourceCollections = "collections"

type collectionAPI interface {
	ListCollections(ctx context.Context, viewer *models.Viewer) ([]models.Collection, error)
	GetCollection(ctx context.Context, viewer *models.Viewer, id string) (*models.Collection, error)
	CreateCollection(ctx context.Context, viewer *models.Viewer, req dto.CreateCollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateCollectionRequest) (*models.Collection, error)
	DeleteCollection(ctx context.Context, viewer *models.Viewer, id string) error
	AddToCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error
	RemoveFromCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error
}

// CollectionService serves collection listings and forwards collection edits.
type CollectionService struct {
	api       collectionAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ListingConfig
}

// NewCollectionService constructs a CollectionService.
func NewCollectionService(api collectionAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger, cfg ListingConfig) *CollectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CollectionService{api: api, cache: cache, validator: validate, logger: logger, cfg: cfg}
}

// tagsOnly keeps the tag lists of state. Collections carry no other facet, so a level or
// language selection would otherwise hide every collection.
func tagsOnly(state *filter.State) *filter.State {
	out := filter.NewState()
	out.SetTagFilter(filter.TagsInclude, state.Tags(filter.TagsInclude))
	out.SetTagFilter(filter.TagsExclude, state.Tags(filter.TagsExclude))
	return out
}

// List returns one page of collection cards matching the tag filters of state.
func (s *CollectionService) List(ctx context.Context, viewer *models.Viewer, state *filter.State, page, limit int) (*ListingPage[dto.CollectionCard], error) {
	collections, err := fetchListing(ctx, s.cache, viewer, resourceCollections, func(ctx context.Context) ([]models.Collection, error) {
		return s.api.ListCollections(ctx, viewer)
	})
	if err != nil {
		return nil, err
	}

	view := openView(collections, tagsOnly(state), page, s.cfg.size(limit))
	options := filter.DeriveOptions(collections)
	facets := FacetOptionCards(models.FacetOptions{Tags: options.Tags})

	return &ListingPage[dto.CollectionCard]{
		Items:      CollectionCards(view.Page(), viewer),
		Pagination: view.Pager().Meta(),
		Facets:     &facets,
		Filters:    view.State().Values(),
	}, nil
}

// Get returns a collection with one page of its member syllabi matching state.
func (s *CollectionService) Get(ctx context.Context, viewer *models.Viewer, id string, state *filter.State, page, limit int) (*dto.CollectionDetail, *ListingPage[dto.SyllabusCard], error) {
	collection, err := s.api.GetCollection(ctx, viewer, id)
	if err != nil {
		return nil, nil, err
	}

	view := openView(collection.Syllabi, state, page, s.cfg.size(limit))
	facets := FacetOptionCards(filter.DeriveOptions(collection.Syllabi))
	members := &ListingPage[dto.SyllabusCard]{
		Items:      SyllabusCards(view.Page(), viewer),
		Pagination: view.Pager().Meta(),
		Facets:     &facets,
		Filters:    view.State().Values(),
	}

	return &dto.CollectionDetail{
		CollectionCard: CollectionCard(*collection, viewer),
		Syllabi:        members.Items,
	}, members, nil
}

// Members returns a collection and every member syllabus matching state, unpaginated.
func (s *CollectionService) Members(ctx context.Context, viewer *models.Viewer, id string, state *filter.State) (*models.Collection, []models.Syllabus, error) {
	collection, err := s.api.GetCollection(ctx, viewer, id)
	if err != nil {
		return nil, nil, err
	}
	return collection, filter.Apply(collection.Syllabi, state), nil
}

// Create validates and forwards a new collection.
func (s *CollectionService) Create(ctx context.Context, viewer *models.Viewer, req dto.CreateCollectionRequest) (*dto.CollectionCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid collection payload"); err != nil {
		return nil, err
	}
	created, err := s.api.CreateCollection(ctx, viewer, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("collection created", zap.String("collection_id", created.ID), zap.String("user_id", viewer.UserID))
	card := CollectionCard(*created, viewer)
	return &card, nil
}

// Update validates and forwards a collection patch.
func (s *CollectionService) Update(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateCollectionRequest) (*dto.CollectionCard, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid collection payload"); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateCollection(ctx, viewer, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	card := CollectionCard(*updated, viewer)
	return &card, nil
}

// Delete forwards a collection removal.
func (s *CollectionService) Delete(ctx context.Context, viewer *models.Viewer, id string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.DeleteCollection(ctx, viewer, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	return nil
}

// AddSyllabus links a syllabus into a collection.
func (s *CollectionService) AddSyllabus(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.AddToCollection(ctx, viewer, collectionID, syllabusID); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	return nil
}

// RemoveSyllabus unlinks a syllabus from a collection.
func (s *CollectionService) RemoveSyllabus(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if err := s.api.RemoveFromCollection(ctx, viewer, collectionID, syllabusID); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	return nil
}
