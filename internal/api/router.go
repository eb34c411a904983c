package api

import (
	"github.com/Conceptual-Machines/ideachords-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/ideachords-api/internal/api/middleware"
	"github.com/Conceptual-Machines/ideachords-api/internal/config"
	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/Conceptual-Machines/ideachords-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, version string, generator *ideachords.Generator, cw *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	stats := handlers.NewGenerationStats()

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, stats)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Public API routes v1
	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.Auth(cfg))
	{
		progressionHandler := handlers.NewProgressionHandler(generator, stats, cw)
		v1.GET("/keys", progressionHandler.ListKeys)
		v1.GET("/keys/:key/chords", progressionHandler.KeyChords)
		v1.GET("/chords/:chord/candidates", progressionHandler.Candidates)
		v1.POST("/progressions", progressionHandler.Generate)
	}

	return router
}
