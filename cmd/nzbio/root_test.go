package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/nzbio/internal/config"
	"github.com/amaumene/nzbio/internal/metrics"
	"github.com/amaumene/nzbio/internal/services"
	"github.com/amaumene/nzbio/pkg/logger"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "NZBio 2.0.0 (org.stremio.nzbio.deploycx)\n", out.String())
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("port"))

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
}

func testRouter(t *testing.T, withMetrics bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		HydraURL:        "http://127.0.0.1:1",
		TMDBBaseURL:     "http://127.0.0.1:1",
		RetentionDays:   365,
		SearchTimeout:   time.Second,
		MetadataTimeout: time.Second,
		RequestTimeout:  time.Second,
		LogLevel:        "debug",
	}
	var m *metrics.Metrics
	if withMetrics {
		m = metrics.New()
	}
	return newRouter(cfg, services.NewContainer(cfg, logger.NewNop(), m))
}

func TestRouterPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t, false).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/stream/movie/tt1.json", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestRouterManifestHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/manifest.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterMetricsEndpoint(t *testing.T) {
	r := testRouter(t, true)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/manifest.json", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nzbio_http_requests_total{method="GET",route="/manifest.json",status="200"} 1`)

	rec = httptest.NewRecorder()
	testRouter(t, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, rec.Body.String(), "nzbio_http_requests_total")
}
