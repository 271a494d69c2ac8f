// Package metrics exposes Prometheus counters for password evaluation traffic.
// Password values never appear in labels.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sources of evaluation traffic.
const (
	SourceHTTP = "http"
	SourceWS   = "ws"
)

// Metrics holds all pwgate collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	EvaluationsTotal *prometheus.CounterVec
	ValidationsTotal *prometheus.CounterVec
	SubmissionsTotal *prometheus.CounterVec
	WSSessions       prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwgate_evaluations_total",
				Help: "Total number of criteria evaluations",
			},
			[]string{"source"},
		),

		ValidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwgate_validations_total",
				Help: "Total number of field validations by outcome",
			},
			[]string{"field", "outcome"},
		),

		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwgate_submissions_total",
				Help: "Total number of form submissions",
			},
			[]string{"accepted"},
		),

		WSSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pwgate_ws_sessions",
				Help: "Number of open live form sessions",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry (for tests and extra collectors).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveEvaluation(source string) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(source).Inc()
}

// ObserveValidation records a field validation. outcome is a reason code, never a message.
func (m *Metrics) ObserveValidation(field, outcome string) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(field, outcome).Inc()
}

func (m *Metrics) ObserveSubmission(accepted bool) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(strconv.FormatBool(accepted)).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.WSSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.WSSessions.Dec()
}
