package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

func newUserService(api *fakeAPI) *UserService {
	return NewUserService(api, nil, validator.New(), zap.NewNop(), ListingConfig{PageSize: 2})
}

func TestUserListPaginates(t *testing.T) {
	api := &fakeAPI{users: []models.User{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	page, err := newUserService(api).List(context.Background(), nil, 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c", page.Items[0].ID)
	assert.Equal(t, []int{1, 2}, page.Pagination.Pages)
}

func TestUserGetHidesEmailFromOthers(t *testing.T) {
	api := &fakeAPI{user: &models.User{
		ID:      "owner",
		Name:    "Owner",
		Email:   "owner@example.org",
		Syllabi: corpus()[:2],
	}}
	svc := newUserService(api)

	mine, err := svc.Get(context.Background(), owner, "owner")
	require.NoError(t, err)
	assert.True(t, mine.IsSelf)
	assert.Equal(t, "owner@example.org", mine.Email)
	assert.Equal(t, 2, mine.SyllabusCount)
	assert.True(t, mine.Syllabi[0].IsOwner)

	theirs, err := svc.Get(context.Background(), stranger, "owner")
	require.NoError(t, err)
	assert.False(t, theirs.IsSelf)
	assert.Empty(t, theirs.Email)
}

func TestUserUpdateOnlySelf(t *testing.T) {
	api := &fakeAPI{}
	svc := newUserService(api)
	name := "New name"

	_, err := svc.Update(context.Background(), stranger, "owner", dto.UpdateUserRequest{Name: &name})
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))
	assert.True(t, errors.Is(svc.Delete(context.Background(), stranger, "owner"), appErrors.ErrForbidden))

	urls := []string{"not a url"}
	_, err = svc.Update(context.Background(), owner, "owner", dto.UpdateUserRequest{URLs: &urls})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, api.calls)

	card, err := svc.Update(context.Background(), owner, "owner", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New name", card.Name)
	assert.True(t, card.IsSelf)
}
