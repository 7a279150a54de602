package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/reference"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
	"github.com/cosyll/cosyll-web/pkg/export"
)

// ExportFormat is a supported download format.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

var syllabusExportHeaders = []string{"Title", "Owner", "Language", "Level", "Fields", "Institutions", "Years", "Tags"}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9]+`)

// ExportService renders syllabus lists as CSV or PDF.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService; nil renderers fall back to the defaults.
func NewExportService(logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger}
}

// ParseExportFormat accepts csv or pdf; empty means csv.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportPDF:
		return ExportPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// Syllabi renders records with labels resolved through the reference tables.
func (s *ExportService) Syllabi(records []models.Syllabus, format ExportFormat, title string) (*ExportFile, error) {
	dataset := syllabusDataset(records)
	base := filename(title)

	var (
		body []byte
		err  error
		file = &ExportFile{}
	)
	switch format {
	case ExportPDF:
		body, err = s.pdf.Render(dataset, title)
		file.Filename = base + ".pdf"
		file.ContentType = "application/pdf"
	default:
		body, err = s.csv.Render(dataset)
		file.Filename = base + ".csv"
		file.ContentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		s.logger.Error("export render failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	file.Body = body
	return file, nil
}

func syllabusDataset(records []models.Syllabus) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		row := map[string]string{
			"Title": r.Title,
			"Owner": r.CreatedBy.Name,
			"Tags":  strings.Join(r.Tags, ", "),
		}
		if r.Language != "" {
			row["Language"] = reference.LanguageLabel(r.Language)
		}
		if r.AcademicLevel != nil {
			row["Level"] = reference.LevelLabel(*r.AcademicLevel)
		}
		fields := make([]string, 0, len(r.AcademicFields))
		for _, code := range r.AcademicFields {
			fields = append(fields, reference.FieldLabel(code))
		}
		row["Fields"] = strings.Join(fields, "; ")

		names := make([]string, 0, len(r.Institutions))
		years := make([]string, 0, len(r.Institutions))
		for _, inst := range r.Institutions {
			names = append(names, inst.Name)
			if inst.Year != 0 {
				years = append(years, strconv.Itoa(inst.Year))
			}
		}
		row["Institutions"] = strings.Join(names, "; ")
		row["Years"] = strings.Join(years, ", ")
		rows = append(rows, row)
	}
	return export.Dataset{Headers: syllabusExportHeaders, Rows: rows}
}

func filename(title string) string {
	slug := strings.Trim(unsafeFilename.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return "syllabi"
	}
	return slug
}
