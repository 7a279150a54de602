package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/service"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// UserHandler handles public profiles and the viewer's own account.
type UserHandler struct {
	users   *service.UserService
	audit   *service.AuditService
	session SessionOptions
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService, audit *service.AuditService, session SessionOptions) *UserHandler {
	return &UserHandler{users: users, audit: audit, session: session}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.users.List(requestContext(c), viewerFromContext(c), page, limit)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination, middleware.Meta(c, nil))
}

// Get godoc
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	detail, err := h.users.Get(requestContext(c), viewerFromContext(c), c.Param("id"))
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil, middleware.Meta(c, nil))
}

// Update godoc
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.users.Update(requestContext(c), viewerFromContext(c), c.Param("id"), req)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// Delete godoc
// @Summary Delete own account
// @Description Deletes the account and ends the session
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(requestContext(c), viewerFromContext(c), c.Param("id")); err != nil {
		h.session.respondError(c, err)
		return
	}
	middleware.ClearSessionCookie(c, h.session.CookieName)
	response.NoContent(c)
}

// Activity godoc
// @Summary Own activity
// @Description Recent changes made by the signed in user
// @Tags Users
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/activity [get]
func (h *UserHandler) Activity(c *gin.Context) {
	_, limit := pageQuery(c)
	entries, err := h.audit.Activity(c.Request.Context(), viewerFromContext(c), limit)
	if err != nil {
		h.session.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
