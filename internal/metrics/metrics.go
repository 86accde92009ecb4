// Package metrics exposes Prometheus collectors for outbound integration
// calls and proposal enrichment outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
	OutcomeNoMatch = "no_match"
)

// Metrics owns a private registry so tests can create as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	outboundRequests *prometheus.CounterVec
	outboundDuration *prometheus.HistogramVec
	enrichments      *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		outboundRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proposal",
			Name:      "outbound_requests_total",
			Help:      "Requests sent to external integrations, by service and outcome.",
		}, []string{"service", "outcome"}),
		outboundDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "proposal",
			Name:      "outbound_request_duration_seconds",
			Help:      "Latency of requests sent to external integrations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		enrichments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proposal",
			Name:      "enrichment_total",
			Help:      "Proposal enrichment steps, by step, lifecycle operation and outcome.",
		}, []string{"step", "operation", "outcome"}),
	}

	m.registry.MustRegister(
		m.outboundRequests,
		m.outboundDuration,
		m.enrichments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveOutbound records one request to an external service.
func (m *Metrics) ObserveOutbound(service, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.outboundRequests.WithLabelValues(service, outcome).Inc()
	m.outboundDuration.WithLabelValues(service).Observe(d.Seconds())
}

// RecordEnrichment records the outcome of one enrichment step.
func (m *Metrics) RecordEnrichment(step, operation, outcome string) {
	if m == nil {
		return
	}
	m.enrichments.WithLabelValues(step, operation, outcome).Inc()
}
