package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ridKey = "lugawan.rid"

// RequestID honours an incoming X-Request-ID so a stall-side reverse
// proxy can correlate its own logs, and mints a fresh id otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "" outside of it.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ridKey)
}

// routeLabel is the matched route template. The access log and the
// metrics labels both use it so the two always agree on naming.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// Logger writes one access line per request: the raw path for
// debugging plus the route template for grepping per endpoint.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] rid=%s %s %s route=%s status=%d dur=%s",
			RequestIDFrom(c), c.Request.Method, c.Request.URL.Path,
			routeLabel(c), c.Writer.Status(), time.Since(start))
	}
}
