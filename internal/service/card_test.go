package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

func TestSyllabusCardLabels(t *testing.T) {
	s := corpus()[7]
	s.AcademicFields = []int{611, 4242}
	s.Institutions = append(s.Institutions, models.Institution{Name: "Elsewhere", Country: 9999})

	card := SyllabusCard(s, owner)

	assert.True(t, card.IsOwner)
	assert.Equal(t, &dto.Label{Code: "de", Label: "German"}, card.Language)
	assert.Equal(t, &dto.Label{Code: "1", Label: "Bachelor"}, card.Level)
	require.Len(t, card.Fields, 2)
	assert.Equal(t, "Default: 4242", card.Fields[1].Label)
	require.Len(t, card.Institutions, 2)
	assert.Equal(t, "United Kingdom", card.Institutions[0].Country.Label)
	assert.Contains(t, card.Institutions[1].Country.Label, "9999")
}

func TestCardOwnershipComesFromViewer(t *testing.T) {
	s := corpus()[0]
	assert.False(t, SyllabusCard(s, nil).IsOwner)
	assert.False(t, SyllabusCard(s, stranger).IsOwner)
	assert.False(t, SyllabusCard(s, &models.Viewer{}).IsOwner)

	c := models.Collection{ID: "c", CreatedBy: models.UserRef{ID: "owner"}, Syllabi: corpus()[:3]}
	card := CollectionCard(c, owner)
	assert.True(t, card.IsOwner)
	assert.Equal(t, 3, card.SyllabusCount)
}

func TestSyllabusCardOmitsAbsentFacets(t *testing.T) {
	card := SyllabusCard(models.Syllabus{ID: "bare", Title: "Bare"}, nil)
	assert.Nil(t, card.Language)
	assert.Nil(t, card.Level)
	assert.Empty(t, card.Fields)
	assert.Empty(t, card.Institutions)
}

func TestFacetOptionCardsNeverNil(t *testing.T) {
	opts := FacetOptionCards(models.FacetOptions{})
	assert.NotNil(t, opts.Languages)
	assert.NotNil(t, opts.Tags)
	assert.NotNil(t, opts.AcademicFields)
}
