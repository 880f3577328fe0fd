package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doHealth(t *testing.T, upstreamURL string) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHealthHandler("scheduler-backend", "1.0.0", upstreamURL).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck_UpstreamUp(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	resp := doHealth(t, upstream.URL)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "scheduler-backend", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "up", resp.Upstream)
}

func TestHealthCheck_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	resp := doHealth(t, upstream.URL)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "down", resp.Upstream)
}

func TestHealthCheck_UpstreamDisabled(t *testing.T) {
	resp := doHealth(t, "")
	assert.Equal(t, "disabled", resp.Upstream)
}
