package filter

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/reference"
)

func level(l models.AcademicLevel) *models.AcademicLevel { return &l }

func corpus() []models.Syllabus {
	out := make([]models.Syllabus, 0, 19)
	for i := 0; i < 19; i++ {
		out = append(out, models.Syllabus{
			ID:             fmt.Sprintf("s-%02d", i),
			Title:          fmt.Sprintf("Syllabus %d", i),
			Status:         models.VisibilityListed,
			Language:       "en",
			AcademicLevel:  level(models.AcademicLevel(i % 3)),
			AcademicFields: []int{611},
			Tags:           []string{"core"},
			Institutions:   []models.Institution{{Name: "Uni", Year: 2020 + i%4}},
		})
	}
	out[7].Language = "de"
	out[7].Tags = []string{"core", "seminar"}
	return out
}

func ids(records []models.Syllabus) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestEmptyStateMatchesEverything(t *testing.T) {
	for _, record := range corpus() {
		assert.True(t, IsVisible(record, NewState()))
		assert.True(t, IsVisible(record, nil))
	}
	assert.True(t, IsVisible(models.Syllabus{}, NewState()))
}

func TestLanguageFilterByName(t *testing.T) {
	view := NewView(corpus(), 12)
	require.Len(t, view.Visible(), 19)

	view.SetFacet(FacetLanguage, reference.ResolveLanguage("German"))
	assert.Equal(t, []string{"s-07"}, ids(view.Visible()))

	view.Reset()
	assert.Len(t, view.Visible(), 19)
	assert.True(t, view.State().IsEmpty())
}

func TestLanguageFilterByNameOutsideCommonLanguages(t *testing.T) {
	records := corpus()
	records[3].Language = "ne"

	state := FromQuery(url.Values{"language": {"Nepali"}})
	assert.Equal(t, "ne", state.Facet(FacetLanguage))
	assert.Equal(t, []string{"s-03"}, ids(Apply(records, state)))
}

func TestAcademicLevel(t *testing.T) {
	state := NewState()
	state.SetFacet(FacetAcademicLevel, "2")

	visible := Apply(corpus(), state)
	require.NotEmpty(t, visible)
	for _, r := range visible {
		assert.Equal(t, models.LevelMaster, *r.AcademicLevel)
	}

	assert.False(t, IsVisible(models.Syllabus{ID: "no-level"}, state), "absent level never matches")
}

func TestAcademicFieldExactMatch(t *testing.T) {
	record := models.Syllabus{AcademicFields: []int{611, 23}}
	state := NewState()

	state.SetFacet(FacetAcademicField, "611")
	assert.True(t, IsVisible(record, state))

	state.SetFacet(FacetAcademicField, "6")
	assert.False(t, IsVisible(record, state), "broad field does not match descendants")

	state.SetFacet(FacetAcademicField, "not-a-code")
	assert.False(t, IsVisible(record, state))
}

func TestAcademicYearChecksEveryAffiliation(t *testing.T) {
	record := models.Syllabus{Institutions: []models.Institution{{Name: "A", Year: 2019}, {Name: "B", Year: 2022}}}
	state := NewState()

	state.SetFacet(FacetAcademicYear, "2022")
	assert.True(t, IsVisible(record, state))

	state.SetFacet(FacetAcademicYear, "2021")
	assert.False(t, IsVisible(record, state))

	assert.False(t, IsVisible(models.Syllabus{}, state), "no institutions never matches")
}

func TestIncludeTagsMatchAny(t *testing.T) {
	state := NewState()
	state.SetTagFilter(TagsInclude, []string{"seminar", "lab"})

	assert.True(t, IsVisible(models.Syllabus{Tags: []string{"lab"}}, state))
	assert.True(t, IsVisible(models.Syllabus{Tags: []string{"core", "seminar"}}, state))
	assert.False(t, IsVisible(models.Syllabus{Tags: []string{"core"}}, state))
	assert.False(t, IsVisible(models.Syllabus{}, state))
}

func TestExcludeTagsVeto(t *testing.T) {
	state := NewState()
	state.SetTagFilter(TagsInclude, []string{"core"})
	state.SetTagFilter(TagsExclude, []string{"seminar"})

	visible := Apply(corpus(), state)
	assert.Len(t, visible, 18)
	assert.NotContains(t, ids(visible), "s-07")
}

func TestFacetsCombineConjunctively(t *testing.T) {
	state := NewState()
	state.SetFacet(FacetLanguage, "en")
	state.SetFacet(FacetAcademicYear, "2021")
	state.SetFacet(FacetAcademicLevel, "1")

	for _, r := range Apply(corpus(), state) {
		assert.Equal(t, "en", r.Language)
		assert.Equal(t, models.LevelBachelor, *r.AcademicLevel)
		assert.Equal(t, 2021, r.Institutions[0].Year)
	}
}

func TestSetFacetEmptyValueUnsets(t *testing.T) {
	state := NewState()
	state.SetFacet(FacetLanguage, "fr")
	assert.False(t, state.IsEmpty())

	state.SetFacet(FacetLanguage, "  ")
	assert.True(t, state.IsEmpty())
	assert.Equal(t, "", state.Facet(FacetLanguage))
}

func TestUnknownFacetPanics(t *testing.T) {
	state := NewState()
	assert.Panics(t, func() { state.SetFacet(Facet("colour"), "blue") })
	assert.Panics(t, func() { state.SetTagFilter(TagDirection("sideways"), nil) })
}

func TestApplyIsIdempotentAndKeepsOrder(t *testing.T) {
	state := NewState()
	state.SetFacet(FacetAcademicYear, "2020")

	once := Apply(corpus(), state)
	twice := Apply(once, state)
	if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
		t.Fatalf("second pass changed the visible set (-once +twice):\n%s", diff)
	}
	assert.Equal(t, []string{"s-00", "s-04", "s-08", "s-12", "s-16"}, ids(once))
}

func TestViewReclampsPageOnFilter(t *testing.T) {
	view := NewView(corpus(), 4)
	view.GoTo(5)
	require.Equal(t, 5, view.Pager().Active())
	assert.Len(t, view.Page(), 3)

	view.SetFacet(FacetLanguage, "de")
	assert.Equal(t, 1, view.Pager().Active())
	assert.Equal(t, []string{"s-07"}, ids(view.Page()))
	assert.False(t, view.Pager().ShouldRender())
}

func TestViewStateIsACopy(t *testing.T) {
	view := NewView(corpus(), 12)
	state := view.State()
	state.SetFacet(FacetLanguage, "de")
	assert.Len(t, view.Visible(), 19)

	view.Use(state)
	assert.Len(t, view.Visible(), 1)
}

func TestFromQuery(t *testing.T) {
	values := url.Values{
		"language":       {"German"},
		"academic_level": {"3"},
		"tags":           {"core, lab", "seminar"},
		"exclude_tags":   {"draft"},
		"unknown":        {"x"},
	}
	state := FromQuery(values)

	assert.Equal(t, "de", state.Facet(FacetLanguage))
	assert.Equal(t, "3", state.Facet(FacetAcademicLevel))
	assert.Equal(t, []string{"core", "lab", "seminar"}, state.Tags(TagsInclude))
	assert.Equal(t, []string{"draft"}, state.Tags(TagsExclude))
	assert.Equal(t, map[string]string{
		"language":       "de",
		"academic_level": "3",
		"tags":           "core,lab,seminar",
		"exclude_tags":   "draft",
	}, state.Values())
}

func TestDeriveOptions(t *testing.T) {
	opts := DeriveOptions(corpus())
	want := models.FacetOptions{
		Languages: []string{"de", "en"},
		Levels:    []models.AcademicLevel{models.LevelOther, models.LevelBachelor, models.LevelMaster},
		Fields:    []int{611},
		Years:     []int{2020, 2021, 2022, 2023},
		Tags:      []string{"core", "seminar"},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}
