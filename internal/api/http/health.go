package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Upstream  string    `json:"upstream,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	upstreamURL string
	probeClient *http.Client
}

func NewHealthHandler(serviceName, version, upstreamURL string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		upstreamURL: upstreamURL,
		probeClient: &http.Client{Timeout: 1 * time.Second},
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	upstreamStatus := "disabled"
	if h.upstreamURL != "" {
		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.upstreamURL, nil)
		if err != nil {
			upstreamStatus = "down"
		} else if resp, err := h.probeClient.Do(req); err != nil {
			upstreamStatus = "down"
		} else {
			resp.Body.Close()
			upstreamStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Upstream:  upstreamStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
