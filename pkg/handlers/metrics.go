package handlers

import (
	"net/http"

	"github.com/ekaya-inc/airtable-mcp/pkg/metrics"
)

// MetricsHandler exposes the Prometheus registry.
type MetricsHandler struct {
	collector *metrics.Collector
}

// NewMetricsHandler creates a MetricsHandler. A nil collector serves 404.
func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{collector: collector}
}

// RegisterRoutes registers GET /metrics.
func (h *MetricsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /metrics", h.collector.Handler())
}
