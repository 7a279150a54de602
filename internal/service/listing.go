package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/filter"
	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

// ListingConfig bounds listing page sizes.
type ListingConfig struct {
	PageSize    int
	MaxPageSize int
}

func (c ListingConfig) size(limit int) int {
	def := c.PageSize
	if def <= 0 {
		def = 12
	}
	max := c.MaxPageSize
	if max < def {
		max = def
	}
	switch {
	case limit <= 0:
		return def
	case limit > max:
		return max
	default:
		return limit
	}
}

// ListingPage is one page of a filtered listing, ready for display.
type ListingPage[C any] struct {
	Items      []C
	Pagination *models.Pagination
	Facets     *dto.FacetOptions
	Filters    map[string]string
}

// Meta renders the listing's facet metadata for the response envelope.
func (p *ListingPage[C]) Meta() map[string]interface{} {
	meta := map[string]interface{}{"filters": p.Filters}
	if p.Facets != nil {
		meta["facets"] = p.Facets
	}
	return meta
}

// openView builds a listing view, applies state and moves to page.
func openView[T filter.Faceted](records []T, state *filter.State, page, size int) *filter.View[T] {
	v := filter.NewView(records, size)
	if state != nil {
		v.Use(state)
	}
	v.GoTo(page)
	return v
}

func requireViewer(viewer *models.Viewer) error {
	if !viewer.Authenticated() {
		return appErrors.Clone(appErrors.ErrUnauthorized, "sign in to make changes")
	}
	return nil
}

func validatePayload(v *validator.Validate, payload interface{}, message string) error {
	if err := v.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return nil
}
