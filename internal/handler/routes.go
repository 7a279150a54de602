package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/models"
)

// Routes groups every handler mounted under the API prefix.
type Routes struct {
	Syllabi     *SyllabusHandler
	Collections *CollectionHandler
	Users       *UserHandler
	Auth        *AuthHandler
	Reference   *ReferenceHandler

	Tokens  middleware.TokenValidator
	Audit   middleware.AuditRecorder
	Session SessionOptions
}

// Register mounts the API on group. Reads run with an optional session; writes require one
// and are recorded in the audit trail.
func (r Routes) Register(group *gin.RouterGroup) {
	sessionCfg := middleware.SessionConfig{CookieName: r.Session.CookieName, LoginPath: r.Session.LoginPath}
	group.Use(middleware.Session(r.Tokens, sessionCfg))
	auth := middleware.RequireSession(r.Tokens, sessionCfg)

	audit := func(action, resource, idParam string) gin.HandlerFunc {
		return middleware.Audit(r.Audit, action, resource, idParam)
	}

	ref := group.Group("/reference")
	ref.GET("/fields", r.Reference.Fields)
	ref.GET("/levels", r.Reference.Levels)
	ref.GET("/languages", r.Reference.Languages)
	ref.GET("/countries", r.Reference.Countries)

	authGroup := group.Group("/auth")
	authGroup.POST("/login", r.Auth.Login)
	authGroup.POST("/logout", r.Auth.Logout)
	authGroup.GET("/session", auth, r.Auth.Session)
	authGroup.POST("/password/forgot", r.Auth.ForgotPassword)
	authGroup.POST("/password/reset", r.Auth.ResetPassword)
	authGroup.POST("/confirm", r.Auth.ConfirmAccount)
	authGroup.POST("/confirm/resend", r.Auth.ResendConfirmation)

	syllabi := group.Group("/syllabi")
	syllabi.GET("", r.Syllabi.List)
	syllabi.GET("/export", r.Syllabi.Export)
	syllabi.GET("/:id", r.Syllabi.Get)
	syllabi.POST("", auth, audit(models.AuditActionCreate, "syllabus", ""), r.Syllabi.Create)
	syllabi.PATCH("/:id", auth, audit(models.AuditActionUpdate, "syllabus", "id"), r.Syllabi.Update)
	syllabi.DELETE("/:id", auth, audit(models.AuditActionDelete, "syllabus", "id"), r.Syllabi.Delete)
	syllabi.POST("/:id/institutions", auth, audit(models.AuditActionCreate, "institution", ""), r.Syllabi.AddInstitution)
	syllabi.PATCH("/:id/institutions/:iid", auth, audit(models.AuditActionUpdate, "institution", "iid"), r.Syllabi.UpdateInstitution)
	syllabi.DELETE("/:id/institutions/:iid", auth, audit(models.AuditActionDelete, "institution", "iid"), r.Syllabi.DeleteInstitution)
	syllabi.POST("/:id/attachments", auth, audit(models.AuditActionCreate, "attachment", ""), r.Syllabi.AddAttachment)
	syllabi.PATCH("/:id/attachments/:aid", auth, audit(models.AuditActionUpdate, "attachment", "aid"), r.Syllabi.UpdateAttachment)
	syllabi.DELETE("/:id/attachments/:aid", auth, audit(models.AuditActionDelete, "attachment", "aid"), r.Syllabi.DeleteAttachment)

	collections := group.Group("/collections")
	collections.GET("", r.Collections.List)
	collections.GET("/:id", r.Collections.Get)
	collections.GET("/:id/export", r.Collections.Export)
	collections.POST("", auth, audit(models.AuditActionCreate, "collection", ""), r.Collections.Create)
	collections.PATCH("/:id", auth, audit(models.AuditActionUpdate, "collection", "id"), r.Collections.Update)
	collections.DELETE("/:id", auth, audit(models.AuditActionDelete, "collection", "id"), r.Collections.Delete)
	collections.POST("/:id/syllabi/:sid", auth, audit(models.AuditActionLink, "collection", "id"), r.Collections.AddSyllabus)
	collections.DELETE("/:id/syllabi/:sid", auth, audit(models.AuditActionUnlink, "collection", "id"), r.Collections.RemoveSyllabus)

	users := group.Group("/users")
	users.GET("", r.Users.List)
	users.GET("/:id", r.Users.Get)
	users.PATCH("/:id", auth, audit(models.AuditActionUpdate, "user", "id"), r.Users.Update)
	users.DELETE("/:id", auth, audit(models.AuditActionDelete, "user", "id"), r.Users.Delete)

	group.GET("/me/activity", auth, r.Users.Activity)
}
