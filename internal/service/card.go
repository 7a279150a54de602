package service

import (
	"strconv"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/reference"
)

// SyllabusCard renders a syllabus for display. Ownership is decided from viewer alone.
func SyllabusCard(s models.Syllabus, viewer *models.Viewer) dto.SyllabusCard {
	card := dto.SyllabusCard{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Status:       s.Status,
		Tags:         s.Tags,
		Institutions: institutionCards(s.Institutions),
		Owner:        s.CreatedBy,
		IsOwner:      viewer.Owns(s.CreatedBy),
	}
	if s.Language != "" {
		card.Language = &dto.Label{Code: s.Language, Label: reference.LanguageLabel(s.Language)}
	}
	if s.AcademicLevel != nil {
		card.Level = &dto.Label{Code: s.AcademicLevel.String(), Label: reference.LevelLabel(*s.AcademicLevel)}
	}
	for _, code := range s.AcademicFields {
		card.Fields = append(card.Fields, dto.Label{Code: strconv.Itoa(code), Label: reference.FieldLabel(code)})
	}
	for _, att := range s.Attachments {
		card.Attachments = append(card.Attachments, *attachmentCard(att))
	}
	return card
}

// SyllabusCards renders a page of syllabi.
func SyllabusCards(items []models.Syllabus, viewer *models.Viewer) []dto.SyllabusCard {
	cards := make([]dto.SyllabusCard, 0, len(items))
	for _, s := range items {
		cards = append(cards, SyllabusCard(s, viewer))
	}
	return cards
}

// CollectionCard renders a collection without its members.
func CollectionCard(c models.Collection, viewer *models.Viewer) dto.CollectionCard {
	return dto.CollectionCard{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Status:        c.Status,
		Tags:          c.Tags,
		SyllabusCount: len(c.Syllabi),
		Owner:         c.CreatedBy,
		IsOwner:       viewer.Owns(c.CreatedBy),
	}
}

// CollectionCards renders a page of collections.
func CollectionCards(items []models.Collection, viewer *models.Viewer) []dto.CollectionCard {
	cards := make([]dto.CollectionCard, 0, len(items))
	for _, c := range items {
		cards = append(cards, CollectionCard(c, viewer))
	}
	return cards
}

// UserCard renders a public profile.
func UserCard(u models.User, viewer *models.Viewer) dto.UserCard {
	return dto.UserCard{
		ID:              u.ID,
		Name:            u.Name,
		Bio:             u.Bio,
		URLs:            u.URLs,
		Institutions:    institutionCards(u.Institutions),
		SyllabusCount:   len(u.Syllabi),
		CollectionCount: len(u.Collections),
		IsSelf:          viewer.Owns(u.Ref()),
	}
}

// UserCards renders a page of profiles.
func UserCards(items []models.User, viewer *models.Viewer) []dto.UserCard {
	cards := make([]dto.UserCard, 0, len(items))
	for _, u := range items {
		cards = append(cards, UserCard(u, viewer))
	}
	return cards
}

// FacetOptionCards labels the distinct facet values of a listing.
func FacetOptionCards(opts models.FacetOptions) dto.FacetOptions {
	out := dto.FacetOptions{
		AcademicLevels: make([]reference.Option, 0, len(opts.Levels)),
		AcademicFields: make([]reference.Option, 0, len(opts.Fields)),
		AcademicYears:  make([]reference.Option, 0, len(opts.Years)),
		Languages:      make([]reference.Option, 0, len(opts.Languages)),
		Tags:           opts.Tags,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	for _, level := range opts.Levels {
		out.AcademicLevels = append(out.AcademicLevels, reference.Option{Value: level.String(), Label: reference.LevelLabel(level)})
	}
	for _, code := range opts.Fields {
		out.AcademicFields = append(out.AcademicFields, reference.Option{Value: strconv.Itoa(code), Label: reference.FieldLabel(code)})
	}
	for _, year := range opts.Years {
		y := strconv.Itoa(year)
		out.AcademicYears = append(out.AcademicYears, reference.Option{Value: y, Label: y})
	}
	for _, code := range opts.Languages {
		out.Languages = append(out.Languages, reference.Option{Value: code, Label: reference.LanguageLabel(code)})
	}
	return out
}

func institutionCards(items []models.Institution) []dto.InstitutionCard {
	if len(items) == 0 {
		return nil
	}
	cards := make([]dto.InstitutionCard, 0, len(items))
	for _, inst := range items {
		card := dto.InstitutionCard{ID: inst.ID, Name: inst.Name, Term: inst.Term, Year: inst.Year, URL: inst.URL}
		if inst.Country != 0 {
			card.Country = &dto.Label{Code: strconv.Itoa(inst.Country), Label: reference.CountryLabel(inst.Country)}
		}
		cards = append(cards, card)
	}
	return cards
}

func attachmentCard(att models.Attachment) *dto.AttachmentCard {
	href := att.URL
	if att.IsUpload() {
		href = att.File
	}
	return &dto.AttachmentCard{ID: att.ID, Name: att.Name, Description: att.Description, Href: href, Upload: att.IsUpload()}
}
