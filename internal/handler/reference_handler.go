package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/reference"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// ReferenceHandler serves the static lookup tables used to build filter forms.
type ReferenceHandler struct{}

// NewReferenceHandler creates a reference handler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Fields godoc
// @Summary Academic fields
// @Description ISCED-F 2013 fields ordered by code
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/fields [get]
func (h *ReferenceHandler) Fields(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Fields(), nil)
}

// Levels godoc
// @Summary Academic levels
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/levels [get]
func (h *ReferenceHandler) Levels(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Levels(), nil)
}

// Languages godoc
// @Summary Languages
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/languages [get]
func (h *ReferenceHandler) Languages(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Languages(), nil)
}

// Countries godoc
// @Summary Countries
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/countries [get]
func (h *ReferenceHandler) Countries(c *gin.Context) {
	response.JSON(c, http.StatusOK, reference.Countries(), nil)
}
