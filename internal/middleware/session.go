package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// ContextViewerKey is the gin context key storing the authenticated viewer.
const ContextViewerKey = "viewer"

// SessionExpiredHeader is set on any response whose request carried an expired session.
// Its value is the login path.
const SessionExpiredHeader = "X-Session-Expired"

const sessionExpiredKey = "session_expired"

// TokenValidator turns a session token into a viewer.
type TokenValidator interface {
	ValidateToken(token string) (*models.Viewer, error)
}

// SessionConfig tells the middleware where the session token lives.
type SessionConfig struct {
	CookieName string
	LoginPath  string
}

// Session attaches the viewer when a valid token is present but never blocks. Invalid
// tokens leave the request anonymous. An expired one also clears the cookie and puts the
// login path into the response metadata so the front-end signs the user out.
func Session(validator TokenValidator, cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c, cfg.CookieName); token != "" {
			viewer, err := validator.ValidateToken(token)
			switch {
			case err == nil:
				c.Set(ContextViewerKey, viewer)
			case errors.Is(err, appErrors.ErrSessionExpired):
				markSessionExpired(c, cfg)
			}
		}
		c.Next()
	}
}

// SessionExpired reports whether the request arrived with an expired session.
func SessionExpired(c *gin.Context) bool {
	return c != nil && c.GetBool(sessionExpiredKey)
}

func markSessionExpired(c *gin.Context, cfg SessionConfig) {
	c.Set(sessionExpiredKey, true)
	ClearSessionCookie(c, cfg.CookieName)
	c.Header(SessionExpiredHeader, cfg.LoginPath)
	SetMeta(c, "redirect", cfg.LoginPath)
}

// RequireSession blocks requests without a valid session. Expired sessions get the login
// path in the response metadata and a cleared cookie.
func RequireSession(validator TokenValidator, cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Viewer(c) != nil {
			c.Next()
			return
		}
		if SessionExpired(c) {
			response.Error(c, appErrors.ErrSessionExpired, Meta(c, nil))
			c.Abort()
			return
		}

		token := extractToken(c, cfg.CookieName)
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized, map[string]interface{}{"redirect": cfg.LoginPath})
			c.Abort()
			return
		}

		viewer, err := validator.ValidateToken(token)
		if err != nil {
			if errors.Is(err, appErrors.ErrSessionExpired) {
				markSessionExpired(c, cfg)
			} else {
				ClearSessionCookie(c, cfg.CookieName)
			}
			response.Error(c, err, map[string]interface{}{"redirect": cfg.LoginPath})
			c.Abort()
			return
		}

		c.Set(ContextViewerKey, viewer)
		c.Next()
	}
}

// Viewer returns the viewer stored on the context, nil for anonymous requests.
func Viewer(c *gin.Context) *models.Viewer {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(ContextViewerKey); ok {
		if viewer, ok := v.(*models.Viewer); ok {
			return viewer
		}
	}
	return nil
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, name string) {
	if name == "" {
		return
	}
	c.SetCookie(name, "", -1, "/", "", c.Request.TLS != nil, true)
}

// extractToken prefers a Bearer Authorization header. Other schemes, such as Basic
// credentials added by a proxy, fall through to the session cookie.
func extractToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if token := strings.TrimSpace(parts[1]); token != "" {
				return token
			}
		}
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
