package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/service"
	"github.com/cosyll/cosyll-web/pkg/response"
)

// Pinger is a dependency probed by the readiness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	probes  map[string]Pinger
}

// NewMetricsHandler constructs a metrics handler. probes are checked by Ready; nil entries are skipped.
func NewMetricsHandler(metrics *service.MetricsService, probes map[string]Pinger) *MetricsHandler {
	active := make(map[string]Pinger, len(probes))
	for name, p := range probes {
		if p != nil {
			active[name] = p
		}
	}
	return &MetricsHandler{metrics: metrics, probes: active}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness
// @Description Process health with a snapshot of request, upstream and cache counters
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "ok", "metrics": h.metrics.Snapshot()}, nil)
}

// Ready godoc
// @Summary Readiness
// @Description Pings the optional cache and audit stores
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /ready [get]
func (h *MetricsHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.probes))
	for name, p := range h.probes {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	response.JSON(c, status, gin.H{"ready": status == http.StatusOK, "checks": checks}, nil)
}
