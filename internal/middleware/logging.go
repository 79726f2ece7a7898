package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorHeader names the header external collaborators use to identify the
// acting user for audit fields. Requests without it act as "system".
const actorHeader = "X-Actor-ID"

const defaultActorID = "system"

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger and the acting user into the request context.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)

		actorID := c.GetHeader(actorHeader)
		if actorID == "" {
			actorID = defaultActorID
		}

		ctx := ContextWithLogger(c.Request.Context(), requestLogger)
		ctx = ContextWithActorID(ctx, actorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		latency := time.Since(start)
		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
		)
	}
}
