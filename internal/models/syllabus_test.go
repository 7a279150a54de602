package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyllabusDecodeToleratesLevelEncodings(t *testing.T) {
	var fromNumber, fromString, missing Syllabus
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","academic_level":2}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s2","academic_level":"3"}`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s3"}`), &missing))

	require.NotNil(t, fromNumber.AcademicLevel)
	assert.Equal(t, LevelMaster, *fromNumber.AcademicLevel)
	require.NotNil(t, fromString.AcademicLevel)
	assert.Equal(t, LevelDoctoral, *fromString.AcademicLevel)
	assert.Nil(t, missing.AcademicLevel)
	assert.Nil(t, missing.Institutions)
}

func TestSyllabusDecodeRejectsGarbageLevel(t *testing.T) {
	var s Syllabus
	assert.Error(t, json.Unmarshal([]byte(`{"academic_level":"bachelor"}`), &s))
}

func TestSyllabusFacetsCollectsEveryAffiliationYear(t *testing.T) {
	level := LevelBachelor
	s := Syllabus{
		AcademicLevel:  &level,
		Language:       "fr",
		AcademicFields: []int{611},
		Tags:           []string{"ml"},
		Institutions: []Institution{
			{Name: "A", Year: 2019},
			{Name: "B"},
			{Name: "C", Year: 2022},
		},
	}

	f := s.Facets()
	assert.Equal(t, []int{2019, 2022}, f.Years)
	assert.Equal(t, "fr", f.Language)
	assert.Equal(t, &level, f.Level)
}

func TestViewerOwns(t *testing.T) {
	var anon *Viewer
	assert.False(t, anon.Owns(UserRef{ID: "u1"}))
	assert.False(t, anon.Authenticated())

	v := &Viewer{UserID: "u1", Token: "tok"}
	assert.True(t, v.Owns(UserRef{ID: "u1"}))
	assert.False(t, v.Owns(UserRef{ID: "u2"}))
	assert.False(t, (&Viewer{}).Owns(UserRef{}))
	assert.True(t, v.Authenticated())
}

func TestVisibilityValid(t *testing.T) {
	assert.True(t, VisibilityListed.Valid())
	assert.True(t, VisibilityUnlisted.Valid())
	assert.False(t, Visibility("draft").Valid())
}
