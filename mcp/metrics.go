package mcp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// serverMetrics carries the per-process tool-call counters. Each server owns
// its own registry so tests can build servers freely without collisions.
type serverMetrics struct {
	registry  *prometheus.Registry
	toolCalls *prometheus.CounterVec
}

func newServerMetrics() *serverMetrics {
	registry := prometheus.NewRegistry()
	toolCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hulymcp",
		Name:      "tool_calls_total",
		Help:      "Tool calls by tool name and outcome.",
	}, []string{"tool", "outcome"})
	registry.MustRegister(toolCalls)
	return &serverMetrics{registry: registry, toolCalls: toolCalls}
}

func (m *serverMetrics) observe(tool string, code WireErrorCode) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch code {
	case CodeInvalidParams:
		outcome = "invalid_params"
	case CodeInternalError:
		outcome = "internal_error"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
