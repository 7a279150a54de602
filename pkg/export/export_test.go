package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Dataset {
	return Dataset{
		Headers: []string{"Title", "Tags"},
		Rows: []map[string]string{
			{"Title": "Networks, advanced", "Tags": "core"},
			{"Title": "Übersetzung"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	out, err := (&CSVExporter{}).Render(sample())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Title", "Tags"},
		{"Networks, advanced", "core"},
		{"Übersetzung", ""},
	}, records)
}

func TestCSVRenderWithBOM(t *testing.T) {
	out, err := NewCSVExporter().Render(sample())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "\ufeffTitle,Tags"))
}

func TestRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{}, "x")
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sample(), "Cosyll syllabi")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
