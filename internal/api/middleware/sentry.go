package middleware

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/ideachords-api/internal/logger"
	"github.com/Conceptual-Machines/ideachords-api/internal/metrics"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	httpStatusBadRequest          = http.StatusBadRequest
	httpStatusInternalServerError = http.StatusInternalServerError
	sentryFlushTimeout            = 2 * time.Second
	requestIDHeader               = "X-Request-ID"
)

// Global metrics instance
var sentryMetrics = metrics.NewSentryMetrics()

// RequestTracking adds a request ID, logs completion and records metrics
func RequestTracking(cw *metrics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		// Route pattern keeps metric cardinality bounded (/keys/:key/chords)
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		fields := logger.Fields{
			"request_id":  requestID,
			"duration_ms": duration.Milliseconds(),
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"client_ip":   c.ClientIP(),
		}

		if statusCode >= httpStatusInternalServerError {
			logger.Error("Request failed with server error", nil, fields)
		} else if statusCode >= httpStatusBadRequest {
			logger.Warn("Request failed with client error", fields)
		} else {
			logger.Info("Request completed", fields)
		}

		sentryMetrics.RecordAPIRequest(c.Request.Context(), endpoint, statusCode, duration)
		cw.RecordAPIRequest(endpoint, statusCode, duration)
	}
}

// SentryMiddleware returns the Sentry middleware with custom configuration
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// RecoverWithSentry recovers from panics and sends them to Sentry
func RecoverWithSentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if hub := sentrygin.GetHubFromContext(c); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						scope.SetRequest(c.Request)
						scope.SetContext("request", map[string]interface{}{
							"request_id": c.GetString("request_id"),
							"method":     c.Request.Method,
							"path":       c.Request.URL.Path,
							"client_ip":  c.ClientIP(),
						})

						if userID, ok := GetUserID(c); ok {
							scope.SetUser(sentry.User{ID: userID})
						}

						hub.RecoverWithContext(c.Request.Context(), err)
					})
				}

				logger.Error("Panic recovered", nil, logger.Fields{
					"request_id": c.GetString("request_id"),
					"error":      err,
					"path":       c.Request.URL.Path,
				})

				c.AbortWithStatusJSON(httpStatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": c.GetString("request_id"),
				})
			}
		}()
		c.Next()
	}
}
