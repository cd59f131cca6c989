package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HandleError logs the failure on the request logger when one is registered
// and aborts the request with a JSON error body.
func HandleError(c *gin.Context, statusCode int, message string, err error) {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zerolog.Logger); ok {
			logger.Error().Err(err).Msg(message)
		}
	}

	response := ErrorResponse{Message: message}
	if err != nil {
		response.Error = err.Error()
	}

	c.AbortWithStatusJSON(statusCode, response)
}
