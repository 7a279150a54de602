package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/client"
	"github.com/cosyll/cosyll-web/internal/middleware"
	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
	"github.com/cosyll/cosyll-web/pkg/middleware/requestid"
	"github.com/cosyll/cosyll-web/pkg/response"
)

const maxPayloadBytes = 1 << 20

// SessionOptions controls the session cookie and the login redirect.
type SessionOptions struct {
	CookieName   string
	CookieSecure bool
	CookieMaxAge time.Duration
	LoginPath    string
}

func viewerFromContext(c *gin.Context) *models.Viewer {
	return middleware.Viewer(c)
}

// requestContext forwards the request id to the Cosyll API.
func requestContext(c *gin.Context) context.Context {
	return client.WithRequestID(c.Request.Context(), requestid.Value(c))
}

func pageQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	return page, limit
}

// bindJSON decodes a request body rejecting unknown fields, so a misspelled field fails
// loudly instead of being dropped on the way to the API.
func bindJSON(c *gin.Context, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(c.Request.Body, maxPayloadBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return appErrors.Clone(appErrors.ErrValidation, "request body is required")
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body: "+err.Error())
	}
	return nil
}

// respondError renders err. An expired session also clears the cookie and tells the
// front-end where to sign in again.
func (o SessionOptions) respondError(c *gin.Context, err error) {
	if errors.Is(err, appErrors.ErrSessionExpired) {
		middleware.ClearSessionCookie(c, o.CookieName)
		response.Error(c, err, middleware.Meta(c, map[string]interface{}{"redirect": o.LoginPath}))
		return
	}
	response.Error(c, err, middleware.Meta(c, nil))
}

func (o SessionOptions) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if o.CookieMaxAge > 0 && maxAge > int(o.CookieMaxAge.Seconds()) {
		maxAge = int(o.CookieMaxAge.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(o.CookieName, token, maxAge, "/", "", o.CookieSecure, true)
}
