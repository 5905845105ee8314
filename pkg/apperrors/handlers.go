package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: {"error": {code, message, details}}.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Server-side errors are
// logged with their wrapped cause; the client sees only the generic message.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error",
			"code", err.Code,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
