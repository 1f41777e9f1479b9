package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntaxlabz/errors-playground/internal/http/middleware"
	"github.com/syntaxlabz/errors-playground/internal/utils"
)

// ErrorResponse is the envelope of every API failure:
//
//	HTTP/1.1 404 Not Found
//	{"request_id": "123e4567-e89b-12d3-a456-426614174000", "code": "not_found", "message": "error not found"}
type ErrorResponse struct {
	// Echoes X-Request-ID
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"not_found"`
	// Human-readable message
	Message string `json:"message" example:"error not found"`
}

// fail aborts with the error envelope. 5xx responses are logged with the
// request-scoped logger; 4xx are left to the access log.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("detail", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: middleware.RequestIDFrom(c),
		Code:      code,
		Message:   msg,
	})
}

// Fail lets the router answer unmatched routes with the same envelope.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// serveFile writes body with contentType. When the download query flag is
// set, the body is marked as an attachment named filename.
func serveFile(c *gin.Context, contentType, filename string, body []byte) {
	if utils.ParseBoolDefault(c.Query("download"), false) {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, contentType, body)
}
