package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// WithResponseMeta initialises response metadata storage on the request context.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, map[string]interface{}{"started_at": time.Now()})
		c.Next()
	}
}

// Meta merges extra into the request's metadata and returns the result, adding the
// processing time so far.
func Meta(c *gin.Context, extra map[string]interface{}) map[string]interface{} {
	meta := map[string]interface{}{}
	if c != nil {
		if stored, ok := c.Get(responseMetaKey); ok {
			if typed, ok := stored.(map[string]interface{}); ok {
				if started, ok := typed["started_at"].(time.Time); ok {
					meta["processing_time_ms"] = time.Since(started).Milliseconds()
				}
				for k, v := range typed {
					if k != "started_at" {
						meta[k] = v
					}
				}
			}
		}
	}
	for k, v := range extra {
		meta[k] = v
	}
	return meta
}

// SetMeta stores a metadata value for the current response.
func SetMeta(c *gin.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	stored, ok := c.Get(responseMetaKey)
	typed, _ := stored.(map[string]interface{})
	if !ok || typed == nil {
		typed = map[string]interface{}{}
		c.Set(responseMetaKey, typed)
	}
	typed[key] = value
}
