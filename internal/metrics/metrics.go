// Package metrics exposes Prometheus counters for ordering and checkout.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/restauflow/internal/pricing"
)

const namespace = "restauflow"

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	linesResolved   prometheus.Counter
	selectionErrors *prometheus.CounterVec
	checkouts       *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, along with Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		linesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_resolved_total",
			Help:      "Selections priced into order lines.",
		}),
		selectionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_rejections_total",
			Help:      "Selections rejected by the resolver, by error kind.",
		}, []string{"kind"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Checkout attempts by outcome.",
		}, []string{"outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Latency of RPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.linesResolved,
		m.selectionErrors,
		m.checkouts,
		m.rpcDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// LineResolved counts a successfully priced selection.
func (m *Metrics) LineResolved() {
	if m == nil {
		return
	}
	m.linesResolved.Inc()
}

// SelectionRejected counts a resolver error under its kind.
func (m *Metrics) SelectionRejected(err error) {
	if m == nil {
		return
	}
	m.selectionErrors.WithLabelValues(rejectionKind(err)).Inc()
}

// Checkout counts a checkout attempt. outcome is e.g. "submitted", "rejected" or "failed".
func (m *Metrics) Checkout(outcome string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(outcome).Inc()
}

// ObserveRPC records the duration of one call.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

func rejectionKind(err error) string {
	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, pricing.ErrMissingVariant):
		return "missing_variant"
	case errors.Is(err, pricing.ErrUnknownVariant):
		return "unknown_variant"
	case errors.Is(err, pricing.ErrMissingRequiredModifier):
		return "missing_required_modifier"
	case errors.Is(err, pricing.ErrInvalidModifierSelection):
		return "invalid_modifier_selection"
	default:
		return "other"
	}
}
