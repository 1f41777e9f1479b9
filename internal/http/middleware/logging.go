// Package middleware contains the Gin middleware of the playground API:
// request IDs, access logging (plain or redacting), panic recovery, metrics,
// rate limiting and security headers.
//
// Recommended order: RequestID, then a logger, then Recovery, so that panics
// and error envelopes carry the correlation ID.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RequestIDHeader propagates the correlation ID.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	loggerKey    = "logger"

	// Incoming IDs longer than this are replaced.
	maxRequestIDLength = 128
	// Raw query strings are capped in logs.
	maxQueryLogLength = 2048
)

// RequestID reuses a well-formed incoming X-Request-ID or generates a UUIDv4,
// stores it in the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// validRequestID accepts short IDs of printable ASCII without spaces.
func validRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

// RequestIDFrom returns the correlation ID of the request, or "".
func RequestIDFrom(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return c.Writer.Header().Get(RequestIDHeader)
}

// routeOf is the matched route template, or the raw path for unmatched requests.
func routeOf(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// requestLogger builds the request-scoped logger: correlation ID, method,
// route and the catalog path parameters of the route, when present.
func requestLogger(c *gin.Context) zerolog.Logger {
	lc := log.With().
		Str("request_id", RequestIDFrom(c)).
		Str("method", c.Request.Method).
		Str("path", routeOf(c))
	if name := c.Param("name"); name != "" {
		lc = lc.Str("error_name", name)
	}
	if id := c.Param("id"); id != "" {
		lc = lc.Str("scenario", id)
	}
	if fw := c.Param("framework"); fw != "" {
		lc = lc.Str("framework", fw)
	}
	return lc.Logger()
}

// eventFor picks the access log level: error for 5xx or recorded gin errors,
// warn for 4xx, info otherwise.
func eventFor(l *zerolog.Logger, c *gin.Context) *zerolog.Event {
	status := c.Writer.Status()
	switch {
	case len(c.Errors) > 0:
		return l.Error().Str("errors", c.Errors.String())
	case status >= 500:
		return l.Error()
	case status >= 400:
		return l.Warn()
	default:
		return l.Info()
	}
}

// Logger writes one structured access log per request and exposes the
// request-scoped logger to handlers through LoggerFrom. Query strings are
// logged as sent (capped); use RedactingLogger when they may carry PII.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		l := requestLogger(c).With().
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength). // -1 when unknown
			Logger()
		c.Set(loggerKey, &l)

		c.Next()

		eventFor(&l, c).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Msg("request")
	}
}

// Recovery turns panics into the standard JSON 500 envelope and logs the
// stack with the correlation ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid := RequestIDFrom(c)
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", rid).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header(RequestIDHeader, rid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": rid,
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger set by Logger or
// RedactingLogger, or the global logger when neither ran.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// truncate caps s at max bytes, appending an ellipsis. max <= 0 disables it.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
