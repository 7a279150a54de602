package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/pagination"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

const resourceUsers = "users"

type userAPI interface {
	ListUsers(ctx context.Context, viewer *models.Viewer) ([]models.User, error)
	GetUser(ctx context.Context, viewer *models.Viewer, id string) (*models.User, error)
	UpdateUser(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, viewer *models.Viewer, id string) error
}

// UserService serves public profiles and forwards profile edits.
type UserService struct {
	api       userAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ListingConfig
}

// NewUserService creates a new UserService.
func NewUserService(api userAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger, cfg ListingConfig) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{api: api, cache: cache, validator: validate, logger: logger, cfg: cfg}
}

// List returns one page of user cards.
func (s *UserService) List(ctx context.Context, viewer *models.Viewer, page, limit int) (*ListingPage[dto.UserCard], error) {
	users, err := fetchListing(ctx, s.cache, viewer, resourceUsers, func(ctx context.Context) ([]models.User, error) {
		return s.api.ListUsers(ctx, viewer)
	})
	if err != nil {
		return nil, err
	}

	pager := pagination.New(len(users), s.cfg.size(limit), page)
	return &ListingPage[dto.UserCard]{
		Items:      UserCards(pagination.Slice(users, pager), viewer),
		Pagination: pager.Meta(),
		Filters:    map[string]string{},
	}, nil
}

// Get returns a profile with its syllabus and collection cards. The email address is only
// shown to the profile owner.
func (s *UserService) Get(ctx context.Context, viewer *models.Viewer, id string) (*dto.UserDetail, error) {
	user, err := s.api.GetUser(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	detail := &dto.UserDetail{
		UserCard:    UserCard(*user, viewer),
		Syllabi:     SyllabusCards(user.Syllabi, viewer),
		Collections: CollectionCards(user.Collections, viewer),
	}
	if detail.IsSelf {
		detail.Email = user.Email
	}
	return detail, nil
}

func (s *UserService) requireSelf(viewer *models.Viewer, id string) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if !viewer.Owns(models.UserRef{ID: id}) {
		return appErrors.Clone(appErrors.ErrForbidden, "you can only edit your own profile")
	}
	return nil
}

// Update validates and forwards a profile patch for the viewer's own account.
func (s *UserService) Update(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateUserRequest) (*dto.UserCard, error) {
	if err := s.requireSelf(viewer, id); err != nil {
		return nil, err
	}
	if err := validatePayload(s.validator, req, "invalid profile payload"); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateUser(ctx, viewer, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	card := UserCard(*updated, viewer)
	return &card, nil
}

// Delete removes the viewer's own account.
func (s *UserService) Delete(ctx context.Context, viewer *models.Viewer, id string) error {
	if err := s.requireSelf(viewer, id); err != nil {
		return err
	}
	if err := s.api.DeleteUser(ctx, viewer, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	s.logger.Info("account deleted", zap.String("user_id", id))
	return nil
}
