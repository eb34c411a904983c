package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Spans are dropped by the SDK when Sentry is not configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordGeneration records one progression generation.
// found is false when chord mode could not place the requested chord.
func (m *SentryMetrics) RecordGeneration(ctx context.Context, mode, key string, duration time.Duration, found bool) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "progression.request")
	defer span.Finish()

	span.SetTag("mode", mode)
	span.SetTag("found", fmt.Sprintf("%t", found))
	if key != "" {
		span.SetTag("key", key)
	}

	span.SetData("duration_us", duration.Microseconds())

	if found {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusNotFound
	}

	span.Description = fmt.Sprintf("Progression: %s", mode)
}
