package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSensitiveHeaders(t *testing.T) {
	filtered := filterSensitiveHeaders(map[string]string{
		"Authorization": "Bearer secret",
		"X-User-ID":     "42",
		"Content-Type":  "application/json",
	})

	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["X-User-ID"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}
