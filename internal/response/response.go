package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
)

// Body is the standardized API response envelope.
type Body struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// internalMessage is returned for storage failures; the real cause is
// logged server-side, never sent to the client.
const internalMessage = "Internal server error"

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Body{
		Success: true,
		Data:    data,
	})
}

// Fail sends an error response with an explicit status code and message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{
		Success:    false,
		Error:      message,
		StatusCode: statusCode,
	})
}

// Error translates an application error into the envelope:
// validation failures map to 400, missing entities to 404, and anything
// else to a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			Fail(c, http.StatusBadRequest, appErr.Message)
			return
		case apperror.KindNotFound:
			Fail(c, http.StatusNotFound, appErr.Message)
			return
		}
	}
	logCause(c, err)
	Fail(c, http.StatusInternalServerError, internalMessage)
}

// logCause records the cause of a failure whose detail the client never
// sees, using the request-scoped logger when one is attached.
func logCause(c *gin.Context, err error) {
	v, ok := c.Get(ContextKeyLogger)
	if !ok {
		return
	}
	if log, ok := v.(zerolog.Logger); ok {
		log.Error().Err(err).Msg("Request failed")
	}
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{
		Success:    false,
		Error:      message,
		StatusCode: statusCode,
	})
}
