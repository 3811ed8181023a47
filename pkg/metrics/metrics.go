// Package metrics exposes Prometheus counters for the request gateway and
// the credential broker. A nil *Collector is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airtable_mcp"

// Broker fetch results.
const (
	BrokerResultSuccess = "success"
	BrokerResultFailure = "failure"
)

// Collector owns a private registry with the gateway and broker metrics.
type Collector struct {
	registry        *prometheus.Registry
	gatewayRequests *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	brokerFetches   *prometheus.CounterVec
	toolCalls       *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
}

// New creates a Collector with Go runtime and process metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		gatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Airtable API calls by HTTP method and normalized outcome.",
		}, []string{"method", "outcome"}),
		gatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Airtable API call latency including token acquisition.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		brokerFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "broker",
			Name:      "fetches_total",
			Help:      "Credential fetches from Nango by result.",
		}, []string{"result"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "MCP tool calls by tool name and result code.",
		}, []string{"tool", "result"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_call_duration_seconds",
			Help:      "MCP tool call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
	}

	c.registry.MustRegister(
		c.gatewayRequests,
		c.gatewayDuration,
		c.brokerFetches,
		c.toolCalls,
		c.toolDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveGatewayRequest records one gateway call. outcome is an outcome kind
// for successes or an error kind for failures.
func (c *Collector) ObserveGatewayRequest(method, outcome string, duration time.Duration) {
	if c == nil {
		return
	}
	c.gatewayRequests.WithLabelValues(method, outcome).Inc()
	c.gatewayDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveBrokerFetch records one credential fetch.
func (c *Collector) ObserveBrokerFetch(result string) {
	if c == nil {
		return
	}
	c.brokerFetches.WithLabelValues(result).Inc()
}

// ObserveToolCall records one MCP tool call. result is "ok" or the error
// code of the tool result.
func (c *Collector) ObserveToolCall(tool, result string, duration time.Duration) {
	if c == nil {
		return
	}
	c.toolCalls.WithLabelValues(tool, result).Inc()
	c.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}
