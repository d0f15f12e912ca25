package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("gallery")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "gallery"))
	return router
}

func serveMetricsTest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHTTPMetricsMiddleware_PassesRequestThrough(t *testing.T) {
	router := newMetricsTestRouter(t)
	router.GET("/designs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total": 0})
	})

	w := serveMetricsTest(router, http.MethodGet, "/designs")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetricsMiddleware_RecordsMixedStatuses(t *testing.T) {
	router := newMetricsTestRouter(t)
	router.GET("/designs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total": 0})
	})
	router.POST("/designs", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "d1"})
	})
	router.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	for range 5 {
		assert.Equal(t, http.StatusOK, serveMetricsTest(router, http.MethodGet, "/designs").Code)
	}
	assert.Equal(t, http.StatusCreated, serveMetricsTest(router, http.MethodPost, "/designs").Code)
	assert.Equal(t, http.StatusInternalServerError, serveMetricsTest(router, http.MethodGet, "/broken").Code)
}

func TestHTTPMetricsMiddleware_UsesRoutePatternForParams(t *testing.T) {
	router := newMetricsTestRouter(t)
	router.GET("/designs/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	// Distinct ids must not blow up the path label cardinality.
	assert.Equal(t, http.StatusOK, serveMetricsTest(router, http.MethodGet, "/designs/123").Code)
	assert.Equal(t, http.StatusOK, serveMetricsTest(router, http.MethodGet, "/designs/456").Code)
}

func TestSanitizePath(t *testing.T) {
	for input, expected := range map[string]string{
		"/v1/designs/:id": "/v1/designs/:id",
		"/v1/files/*path": "/v1/files/*path",
		"/":               "/",
		"":                "unknown",
	} {
		assert.Equal(t, expected, sanitizePath(input), "input %q", input)
	}
}
