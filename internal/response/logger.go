package response

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContextKeyLogger is the Gin context key for the request-scoped logger.
const ContextKeyLogger = "logger"

// LoggerMiddleware attaches a request-scoped logger carrying the request
// ID. Error translation uses it to record the server-side cause of
// failures whose detail is suppressed from the client.
func LoggerMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log.With().Str("request_id", c.GetString(ContextKeyRequestID)).Logger()
		c.Set(ContextKeyLogger, reqLog)
		c.Next()
	}
}
