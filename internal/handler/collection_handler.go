package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/filter"
	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/service"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// CollectionHandler serves collections and their member syllabi.
type CollectionHandler struct {
	collections *service.CollectionService
	exports     *service.ExportService
	session     SessionOptions
}

// NewCollectionHandler creates a new collection handler.
func NewCollectionHandler(collections *service.CollectionService, exports *service.ExportService, session SessionOptions) *CollectionHandler {
	return &CollectionHandler{collections: collections, exports: exports, session: session}
}

// List godoc
// @Summary List collections
// @Description Paginate collections; only the tag filters apply
// @Tags Collections
// @Produce json
// @Param tags query string false "Comma separated tags, any must match"
// @Param exclude_tags query string false "Comma separated tags, none may match"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.collections.List(requestContext(c), viewerFromContext(c), filter.FromQuery(c.Request.URL.Query()), page, limit)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination, middleware.Meta(c, result.Meta()))
}

// Get godoc
// @Summary Get collection
// @Description Collection details with one filtered page of its syllabi
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Param language query string false "Language code or name"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	page, limit := pageQuery(c)
	detail, members, err := h.collections.Get(requestContext(c), viewerFromContext(c), c.Param("id"), filter.FromQuery(c.Request.URL.Query()), page, limit)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, members.Pagination, middleware.Meta(c, members.Meta()))
}

// Export godoc
// @Summary Export collection
// @Description Download the filtered member syllabi of a collection as CSV or PDF
// @Tags Collections
// @Produce octet-stream
// @Param id path string true "Collection ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /collections/{id}/export [get]
func (h *CollectionHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	collection, records, err := h.collections.Members(requestContext(c), viewerFromContext(c), c.Param("id"), filter.FromQuery(c.Request.URL.Query()))
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	file, err := h.exports.Syllabi(records, format, collection.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// Create godoc
// @Summary Create collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param payload body dto.CreateCollectionRequest true "Collection payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.collections.Create(requestContext(c), viewerFromContext(c), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	middleware.SetAuditResourceID(c, card.ID)
	response.Created(c, card)
}

// Update godoc
// @Summary Update collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param payload body dto.UpdateCollectionRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /collections/{id} [patch]
func (h *CollectionHandler) Update(c *gin.Context) {
	var req dto.UpdateCollectionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.collections.Update(requestContext(c), viewerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// Delete godoc
// @Summary Delete collection
// @Tags Collections
// @Param id path string true "Collection ID"
// @Success 204
// @Router /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.collections.Delete(requestContext(c), viewerFromContext(c), c.Param("id")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}

// AddSyllabus godoc
// @Summary Add syllabus to collection
// @Tags Collections
// @Param id path string true "Collection ID"
// @Param sid path string true "Syllabus ID"
// @Success 204
// @Router /collections/{id}/syllabi/{sid} [post]
func (h *CollectionHandler) AddSyllabus(c *gin.Context) {
	if err := h.collections.AddSyllabus(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("sid")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}

// RemoveSyllabus godoc
// @Summary Remove syllabus from collection
// @Tags Collections
// @Param id path string true "Collection ID"
// @Param sid path string true "Syllabus ID"
// @Success 204
// @Router /collections/{id}/syllabi/{sid} [delete]
func (h *CollectionHandler) RemoveSyllabus(c *gin.Context) {
	if err := h.collections.RemoveSyllabus(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("sid")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}
