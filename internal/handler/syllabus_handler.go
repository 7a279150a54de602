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

// SyllabusHandler serves syllabus listings, details and edits, including the institutions
// and attachments nested under a syllabus.
type SyllabusHandler struct {
	syllabi      *service.SyllabusService
	institutions *service.InstitutionService
	attachments  *service.AttachmentService
	exports      *service.ExportService
	session      SessionOptions
}

// NewSyllabusHandler creates a new syllabus handler.
func NewSyllabusHandler(syllabi *service.SyllabusService, institutions *service.InstitutionService, attachments *service.AttachmentService, exports *service.ExportService, session SessionOptions) *SyllabusHandler {
	return &SyllabusHandler{syllabi: syllabi, institutions: institutions, attachments: attachments, exports: exports, session: session}
}

// List godoc
// @Summary List syllabi
// @Description Filter and paginate the syllabus listing
// @Tags Syllabi
// @Produce json
// @Param academic_level query string false "Academic level (0-3)"
// @Param academic_field query string false "ISCED-F field code"
// @Param academic_year query string false "Year of any institution affiliation"
// @Param language query string false "Language code or name"
// @Param tags query string false "Comma separated tags, any must match"
// @Param exclude_tags query string false "Comma separated tags, none may match"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /syllabi [get]
func (h *SyllabusHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.syllabi.List(requestContext(c), viewerFromContext(c), filter.FromQuery(c.Request.URL.Query()), page, limit)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination, middleware.Meta(c, result.Meta()))
}

// Export godoc
// @Summary Export syllabi
// @Description Download the filtered syllabus listing as CSV or PDF
// @Tags Syllabi
// @Produce octet-stream
// @Param format query string false "csv or pdf"
// @Param language query string false "Language code or name"
// @Param tags query string false "Comma separated tags"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /syllabi/export [get]
func (h *SyllabusHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.syllabi.Filtered(requestContext(c), viewerFromContext(c), filter.FromQuery(c.Request.URL.Query()))
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	file, err := h.exports.Syllabi(records, format, "Cosyll syllabi")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// Get godoc
// @Summary Get syllabus
// @Tags Syllabi
// @Produce json
// @Param id path string true "Syllabus ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /syllabi/{id} [get]
func (h *SyllabusHandler) Get(c *gin.Context) {
	card, err := h.syllabi.Get(requestContext(c), viewerFromContext(c), c.Param("id"))
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil, middleware.Meta(c, nil))
}

// Create godoc
// @Summary Create syllabus
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param payload body dto.CreateSyllabusRequest true "Syllabus payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /syllabi [post]
func (h *SyllabusHandler) Create(c *gin.Context) {
	var req dto.CreateSyllabusRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.syllabi.Create(requestContext(c), viewerFromContext(c), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	middleware.SetAuditResourceID(c, card.ID)
	response.Created(c, card)
}

// Update godoc
// @Summary Update syllabus
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param payload body dto.UpdateSyllabusRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /syllabi/{id} [patch]
func (h *SyllabusHandler) Update(c *gin.Context) {
	var req dto.UpdateSyllabusRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.syllabi.Update(requestContext(c), viewerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// Delete godoc
// @Summary Delete syllabus
// @Tags Syllabi
// @Param id path string true "Syllabus ID"
// @Success 204
// @Failure 401 {object} response.Envelope
// @Router /syllabi/{id} [delete]
func (h *SyllabusHandler) Delete(c *gin.Context) {
	if err := h.syllabi.Delete(requestContext(c), viewerFromContext(c), c.Param("id")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}

// AddInstitution godoc
// @Summary Add institution
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param payload body dto.InstitutionRequest true "Institution payload"
// @Success 201 {object} response.Envelope
// @Router /syllabi/{id}/institutions [post]
func (h *SyllabusHandler) AddInstitution(c *gin.Context) {
	var req dto.InstitutionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.institutions.Add(requestContext(c), viewerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	middleware.SetAuditResourceID(c, card.ID)
	response.Created(c, card)
}

// UpdateInstitution godoc
// @Summary Update institution
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param iid path string true "Institution ID"
// @Param payload body dto.UpdateInstitutionRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /syllabi/{id}/institutions/{iid} [patch]
func (h *SyllabusHandler) UpdateInstitution(c *gin.Context) {
	var req dto.UpdateInstitutionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.institutions.Update(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("iid"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// DeleteInstitution godoc
// @Summary Delete institution
// @Tags Syllabi
// @Param id path string true "Syllabus ID"
// @Param iid path string true "Institution ID"
// @Success 204
// @Router /syllabi/{id}/institutions/{iid} [delete]
func (h *SyllabusHandler) DeleteInstitution(c *gin.Context) {
	if err := h.institutions.Delete(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("iid")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}

// AddAttachment godoc
// @Summary Add attachment
// @Description Attach a link or an uploaded file reference; exactly one of url and file
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param payload body dto.AttachmentRequest true "Attachment payload"
// @Success 201 {object} response.Envelope
// @Router /syllabi/{id}/attachments [post]
func (h *SyllabusHandler) AddAttachment(c *gin.Context) {
	var req dto.AttachmentRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.attachments.Add(requestContext(c), viewerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	middleware.SetAuditResourceID(c, card.ID)
	response.Created(c, card)
}

// UpdateAttachment godoc
// @Summary Update attachment
// @Tags Syllabi
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param aid path string true "Attachment ID"
// @Param payload body dto.UpdateAttachmentRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /syllabi/{id}/attachments/{aid} [patch]
func (h *SyllabusHandler) UpdateAttachment(c *gin.Context) {
	var req dto.UpdateAttachmentRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.attachments.Update(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("aid"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// DeleteAttachment godoc
// @Summary Delete attachment
// @Tags Syllabi
// @Param id path string true "Syllabus ID"
// @Param aid path string true "Attachment ID"
// @Success 204
// @Router /syllabi/{id}/attachments/{aid} [delete]
func (h *SyllabusHandler) DeleteAttachment(c *gin.Context) {
	if err := h.attachments.Delete(requestContext(c), viewerFromContext(c), c.Param("id"), c.Param("aid")); err != nil {
		h.session.respondError(c, err)
		return
	}
	response.NoContent(c)
}
