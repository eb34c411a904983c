package config

import "os"

// Config holds the application configuration
// Note: The service is stateless - progressions are generated per request
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN        string // Sentry DSN for error tracking
	MetricsNamespace string // CloudWatch namespace, only used in production

	// CORS origin allowed to call the API from a browser
	CORSAllowedOrigin string

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the hosting gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		MetricsNamespace:  getEnv("METRICS_NAMESPACE", "IdeaChords/API"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsGatewayMode returns true if running behind the hosting gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction returns true when ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
