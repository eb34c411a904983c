package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "SENTRY_DSN", "METRICS_NAMESPACE", "CORS_ALLOWED_ORIGIN", "AUTH_MODE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.SentryDSN)
	assert.Equal(t, "IdeaChords/API", cfg.MetricsNamespace)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.False(t, cfg.IsGatewayMode())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_MODE", "gateway")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://chords.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://chords.example.com", cfg.CORSAllowedOrigin)
	assert.True(t, cfg.IsGatewayMode())
	assert.True(t, cfg.IsProduction())
}
