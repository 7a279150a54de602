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
	"github.com/cosyll/cosyll-web/internal/reference"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

func newSyllabusService(api *fakeAPI, cache *CacheService) *SyllabusService {
	return NewSyllabusService(api, cache, validator.New(), zap.NewNop(), ListingConfig{PageSize: 4, MaxPageSize: 10})
}

func TestSyllabusListPaginatesAndFilters(t *testing.T) {
	api := &fakeAPI{listing: &models.SyllabusListing{Syllabi: corpus()}}
	svc := newSyllabusService(api, nil)

	page, err := svc.List(context.Background(), nil, filter.NewState(), 9, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Pagination.LastPage)
	assert.Equal(t, 5, page.Pagination.Page, "page is clamped to the last one")
	assert.Len(t, page.Items, 3)
	assert.True(t, page.Pagination.Render)

	state := filter.NewState()
	state.SetFacet(filter.FacetLanguage, reference.ResolveLanguage("German"))
	page, err = svc.List(context.Background(), nil, state, 5, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "s-07", page.Items[0].ID)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.False(t, page.Pagination.Render)
	assert.Equal(t, map[string]string{"language": "de"}, page.Filters)

	page, err = svc.List(context.Background(), nil, filter.NewState(), 1, 100)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10, "limit is capped by the max page size")
}

func TestSyllabusListDerivesFacetsWhenMissing(t *testing.T) {
	api := &fakeAPI{listing: &models.SyllabusListing{Syllabi: corpus()}}
	page, err := newSyllabusService(api, nil).List(context.Background(), nil, nil, 1, 0)
	require.NoError(t, err)

	require.NotNil(t, page.Facets)
	assert.Equal(t, []reference.Option{{Value: "de", Label: "German"}, {Value: "en", Label: "English"}}, page.Facets.Languages)
	assert.Equal(t, []reference.Option{{Value: "2021", Label: "2021"}}, page.Facets.AcademicYears)
	assert.Equal(t, []string{"core"}, page.Facets.Tags)
}

func TestSyllabusListPrefersAPIFacets(t *testing.T) {
	api := &fakeAPI{listing: &models.SyllabusListing{
		Syllabi: corpus(),
		Facets:  &models.FacetOptions{Languages: []string{"fr"}},
	}}
	page, err := newSyllabusService(api, nil).List(context.Background(), nil, nil, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []reference.Option{{Value: "fr", Label: "French"}}, page.Facets.Languages)
}

func TestSyllabusListCachesAnonymousListings(t *testing.T) {
	api := &fakeAPI{listing: &models.SyllabusListing{Syllabi: corpus()}}
	store := newMemoryCache()
	cache := NewCacheService(store, NewMetricsService(), 0, zap.NewNop(), true)
	svc := newSyllabusService(api, cache)

	for i := 0; i < 3; i++ {
		_, err := svc.List(context.Background(), nil, nil, 1, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, api.count("ListSyllabi"))

	_, err := svc.List(context.Background(), owner, nil, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, api.count("ListSyllabi"), "signed-in viewers bypass the cache")

	require.NoError(t, svc.Delete(context.Background(), owner, "s-01"))
	assert.Contains(t, store.deleted, "cosyll:list:syllabi")
}

func TestSyllabusCreateValidatesBeforeCalling(t *testing.T) {
	api := &fakeAPI{}
	svc := newSyllabusService(api, nil)

	_, err := svc.Create(context.Background(), owner, dto.CreateSyllabusRequest{Title: "", Status: "hidden"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, api.calls)

	card, err := svc.Create(context.Background(), owner, dto.CreateSyllabusRequest{Title: "Compilers", Status: models.VisibilityListed, Language: "en"})
	require.NoError(t, err)
	assert.True(t, card.IsOwner)
	assert.Equal(t, []string{"CreateSyllabus"}, api.calls)
	assert.Same(t, owner, api.viewers[0])
}

func TestSyllabusMutationsRequireSession(t *testing.T) {
	api := &fakeAPI{}
	svc := newSyllabusService(api, nil)
	title := "x"

	_, err := svc.Update(context.Background(), nil, "s1", dto.UpdateSyllabusRequest{Title: &title})
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
	assert.True(t, errors.Is(svc.Delete(context.Background(), &models.Viewer{UserID: "u"}, "s1"), appErrors.ErrUnauthorized))
	assert.Empty(t, api.calls)
}

func TestSyllabusUpstreamErrorPassesThrough(t *testing.T) {
	upstream := appErrors.New(appErrors.ErrUpstream.Code, 400, "title: This field may not be blank.")
	api := &fakeAPI{err: upstream}
	title := "ok"

	_, err := newSyllabusService(api, nil).Update(context.Background(), owner, "s1", dto.UpdateSyllabusRequest{Title: &title})
	assert.Same(t, upstream, err)
}

func TestSyllabusGetDetail(t *testing.T) {
	s := corpus()[0]
	s.Attachments = []models.Attachment{{Name: "Reading list", File: "/media/list.pdf"}}
	api := &fakeAPI{syllabus: &s}

	card, err := newSyllabusService(api, nil).Get(context.Background(), stranger, s.ID)
	require.NoError(t, err)
	assert.False(t, card.IsOwner)
	require.Len(t, card.Attachments, 1)
	assert.True(t, card.Attachments[0].Upload)
	assert.Equal(t, "/media/list.pdf", card.Attachments[0].Href)
}

func TestSyllabusFilteredIsUnpaginated(t *testing.T) {
	api := &fakeAPI{listing: &models.SyllabusListing{Syllabi: corpus()}}
	state := filter.NewState()
	state.SetFacet(filter.FacetLanguage, "en")

	records, err := newSyllabusService(api, nil).Filtered(context.Background(), nil, state)
	require.NoError(t, err)
	assert.Len(t, records, 18)
}
