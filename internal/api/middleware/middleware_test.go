package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/ideachords-api/internal/config"
	"github.com/Conceptual-Machines/ideachords-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/whoami", func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user": id, "request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	return router
}

func TestRequestTracking_SetsRequestID(t *testing.T) {
	router := newTestRouter(RequestTracking(metrics.NewDisabledClient("test")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(requestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Contains(t, w.Body.String(), requestID)
}

func TestRecoverWithSentry(t *testing.T) {
	router := newTestRouter(RecoverWithSentry(), RequestTracking(metrics.NewDisabledClient("test")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		authMode string
		header   string
		wantUser string
	}{
		{name: "none ignores header", authMode: "none", header: "42", wantUser: "anonymous"},
		{name: "gateway trusts header", authMode: "gateway", header: "42", wantUser: "42"},
		{name: "gateway without header", authMode: "gateway", wantUser: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(Auth(&config.Config{AuthMode: tt.authMode}))

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"user":"`+tt.wantUser+`"`)
		})
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(CORS("https://chords.example.com"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/whoami", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://chords.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
