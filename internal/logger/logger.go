package logger

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// WithContext extracts request context for logging
func WithContext(c *gin.Context) Fields {
	fields := Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}

	if userID, exists := c.Get("user_id_str"); exists {
		fields["user_id"] = userID
	}

	return fields
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, formatFields(fields))
	addBreadcrumb("info", msg, fields, sentry.LevelInfo)
}

// Error logs an error message with structured fields and sends to Sentry
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			applyFields(scope, fields)
			if err != nil {
				hub.CaptureException(err)
			} else {
				hub.CaptureMessage(msg)
			}
		})
	}
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, formatFields(fields))
	addBreadcrumb("warning", msg, fields, sentry.LevelWarning)
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields Fields) {
	log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	addBreadcrumb("debug", msg, fields, sentry.LevelDebug)
}

// LogGenerationRequest logs a completed progression generation
func LogGenerationRequest(ctx context.Context, mode, key string, duration time.Duration, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}

	fields["mode"] = mode
	fields["key"] = key
	fields["duration_us"] = duration.Microseconds()

	Info("Generation request completed", fields)

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		span := sentry.StartSpan(ctx, "progression.generate")
		span.Description = mode
		span.SetData("key", key)
		span.Finish()
	}
}

func addBreadcrumb(kind, msg string, fields Fields, level sentry.Level) {
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     kind,
			Category: "log",
			Message:  msg,
			Data:     convertFieldsToMap(fields),
			Level:    level,
		})
	}
}

// applyFields copies fields onto a Sentry scope, tagging the filterable ones
func applyFields(scope *sentry.Scope, fields Fields) {
	for key, value := range fields {
		scope.SetContext(key, map[string]interface{}{
			"value": value,
		})
	}

	for _, tag := range []string{"request_id", "mode", "key"} {
		if v, ok := fields[tag].(string); ok {
			scope.SetTag(tag, v)
		}
	}
}

// formatFields renders fields as {k=v, ...} with keys sorted
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(formatValue(fields[k]))
	}
	b.WriteString("}")
	return b.String()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func convertFieldsToMap(fields Fields) map[string]interface{} {
	result := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		result[k] = v
	}
	return result
}
