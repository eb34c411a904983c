package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"supported_keys": len(ideachords.SupportedKeys()),
	})
}
