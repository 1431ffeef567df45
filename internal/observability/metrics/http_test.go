package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m, err := newHTTPMetrics(prometheus.NewRegistry(), Config{ServiceName: "console", Environment: "test"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/api/organizations/:orgId", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/organizations/a", "/api/organizations/b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/organizations/:orgId", "200"))
	assert.Equal(t, float64(2), got)
}

func TestUnmatchedRouteIsLabelledUnknown(t *testing.T) {
	m, err := newHTTPMetrics(prometheus.NewRegistry(), Config{})
	require.NoError(t, err)

	m.Observe(http.MethodGet, "", http.StatusNotFound, 0)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unknown", "404"))
	assert.Equal(t, float64(1), got)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := newHTTPMetrics(registry, Config{})
	require.NoError(t, err)

	_, err = newHTTPMetrics(registry, Config{})
	assert.Error(t, err)
}

func TestNilMetricsObserveIsNoop(t *testing.T) {
	var m *HTTPMetrics
	assert.NotPanics(t, func() { m.Observe(http.MethodGet, "/", http.StatusOK, 0) })
}
