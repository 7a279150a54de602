package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/models"
	"github.com/cosyll/cosyll-web/internal/service"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	session SessionOptions
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, session SessionOptions) *AuthHandler {
	return &AuthHandler{service: svc, session: session}
}

// Login godoc
// @Summary Sign in
// @Description Forward credentials to the Cosyll API and store the session token in a cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.service.Login(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.session.setSessionCookie(c, session.Viewer.Token, session.ExpiresAt)
	response.JSON(c, http.StatusOK, dto.SessionResponse{
		User:      service.UserCard(session.User, session.Viewer),
		ExpiresIn: int(time.Until(session.ExpiresAt).Seconds()),
	}, nil)
}

// Logout godoc
// @Summary Sign out
// @Tags Authentication
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.session.CookieName)
	response.NoContent(c)
}

// Session godoc
// @Summary Current session
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	viewer := viewerFromContext(c)
	response.JSON(c, http.StatusOK, gin.H{"user_id": viewer.UserID, "name": viewer.Name, "email": viewer.Email}, nil)
}

// ForgotPassword godoc
// @Summary Request password reset
// @Tags Authentication
// @Accept json
// @Param payload body models.ForgotPasswordRequest true "Account email"
// @Success 202 {object} response.Envelope
// @Router /auth/password/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.ForgotPassword(requestContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": "if the account exists, a recovery mail is on its way"}, nil)
}

// ResetPassword godoc
// @Summary Reset password
// @Tags Authentication
// @Accept json
// @Param payload body models.ResetPasswordRequest true "Token and new password"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Router /auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.ResetPassword(requestContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ConfirmAccount godoc
// @Summary Confirm account
// @Tags Authentication
// @Accept json
// @Param payload body models.ConfirmAccountRequest true "Confirmation token"
// @Success 204
// @Router /auth/confirm [post]
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	var req models.ConfirmAccountRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.ConfirmAccount(requestContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ResendConfirmation godoc
// @Summary Resend confirmation mail
// @Tags Authentication
// @Accept json
// @Param payload body models.ForgotPasswordRequest true "Account email"
// @Success 202 {object} response.Envelope
// @Router /auth/confirm/resend [post]
func (h *AuthHandler) ResendConfirmation(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.ResendConfirmation(requestContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": "confirmation mail sent"}, nil)
}
