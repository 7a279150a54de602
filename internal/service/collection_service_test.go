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
	"github.com/cosyll/cosyll-web/internal/filter"
	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

func newCollectionService(api *fakeAPI) *CollectionService {
	return NewCollectionService(api, nil, validator.New(), zap.NewNop(), ListingConfig{PageSize: 12})
}

func TestCollectionListUsesTagFiltersOnly(t *testing.T) {
	api := &fakeAPI{collections: []models.Collection{
		{ID: "c1", Name: "Intro", Tags: []string{"intro"}, CreatedBy: models.UserRef{ID: "owner"}},
		{ID: "c2", Name: "Advanced", Tags: []string{"advanced"}},
		{ID: "c3", Name: "Untagged"},
	}}

	state := filter.NewState()
	state.SetFacet(filter.FacetLanguage, "de")
	state.SetTagFilter(filter.TagsExclude, []string{"advanced"})

	page, err := newCollectionService(api).List(context.Background(), owner, state, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "c1", page.Items[0].ID)
	assert.True(t, page.Items[0].IsOwner)
	assert.Equal(t, "c3", page.Items[1].ID)
	assert.Equal(t, []string{"advanced", "intro"}, page.Facets.Tags)
	assert.Equal(t, map[string]string{"exclude_tags": "advanced"}, page.Filters)
}

func TestCollectionGetFiltersMembers(t *testing.T) {
	api := &fakeAPI{collection: &models.Collection{ID: "c1", Name: "Reading", Syllabi: corpus(), CreatedBy: models.UserRef{ID: "owner"}}}

	state := filter.NewState()
	state.SetFacet(filter.FacetLanguage, "en")
	detail, members, err := newCollectionService(api).Get(context.Background(), nil, "c1", state, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 19, detail.SyllabusCount)
	assert.False(t, detail.IsOwner)
	assert.Len(t, detail.Syllabi, 6)
	assert.Equal(t, 18, members.Pagination.TotalCount)
	assert.Equal(t, 2, members.Pagination.LastPage)
	assert.Equal(t, 2, members.Pagination.Page)
}

func TestCollectionMembership(t *testing.T) {
	api := &fakeAPI{}
	svc := newCollectionService(api)

	require.NoError(t, svc.AddSyllabus(context.Background(), owner, "c1", "s1"))
	require.NoError(t, svc.RemoveSyllabus(context.Background(), owner, "c1", "s1"))
	assert.True(t, errors.Is(svc.AddSyllabus(context.Background(), nil, "c1", "s1"), appErrors.ErrUnauthorized))
	assert.Equal(t, []string{"AddToCollection", "RemoveFromCollection"}, api.calls)
}

func TestCollectionCreateValidation(t *testing.T) {
	api := &fakeAPI{}
	svc := newCollectionService(api)

	_, err := svc.Create(context.Background(), owner, dto.CreateCollectionRequest{Name: "Mine", Status: "draft"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	card, err := svc.Create(context.Background(), owner, dto.CreateCollectionRequest{Name: "Mine", Status: models.VisibilityUnlisted, Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "c-new", card.ID)
	assert.True(t, card.IsOwner)

	tooMany := make([]string, 21)
	for i := range tooMany {
		tooMany[i] = "t"
	}
	_, err = svc.Update(context.Background(), owner, "c1", dto.UpdateCollectionRequest{Tags: &tooMany})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
