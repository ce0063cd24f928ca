// Package metrics exposes the service's Prometheus collectors. Everything is
// registered on the default registry; the metrics listener is optional and
// configured separately from the gRPC transport.
package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts unary RPCs by method and gRPC code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automationd_requests_total",
		Help: "Unary RPCs handled, by full method and status code.",
	}, []string{"method", "code"})

	// RequestDuration observes unary handler latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "automationd_request_duration_seconds",
		Help:    "Unary handler latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// OperationsFinished counts LRO completions by kind and outcome.
	OperationsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automationd_operations_finished_total",
		Help: "Long-running operations finished, by kind and outcome.",
	}, []string{"kind", "outcome"})

	// ObservationEvents counts observation events by disposition.
	ObservationEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automationd_observation_events_total",
		Help: "Observation events, by disposition (delivered, dropped, suppressed).",
	}, []string{"disposition"})

	// RegistrySize tracks registry occupancy by registry name.
	RegistrySize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "automationd_registry_size",
		Help: "Entries currently held per in-memory registry.",
	}, []string{"registry"})
)

// Serve starts the /metrics listener when addr is non-empty. Failures are
// logged, never fatal; metrics are an observer, not a dependency.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logger := log.New(log.Writer(), "[METRICS] ", log.LstdFlags)
		logger.Printf("serving on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Printf("listener stopped: %v", err)
		}
	}()
}
