package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks archive and scoring activity for the /metrics endpoint.
// Each Server carries its own registry so several instances can coexist in
// one process.
type Metrics struct {
	registry          *prometheus.Registry
	documentsIngested prometheus.Counter
	scoringRuns       *prometheus.CounterVec
	scoringDuration   prometheus.Histogram
	reportsRendered   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documentsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tempo_documents_ingested_total",
			Help: "Total documents added to the archive over HTTP.",
		}),
		scoringRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tempo_scoring_runs_total",
			Help: "Total scoring runs by outcome.",
		}, []string{"outcome"}),
		scoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tempo_scoring_duration_seconds",
			Help:    "Histogram of scoring run durations.",
			Buckets: prometheus.DefBuckets,
		}),
		reportsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tempo_reports_rendered_total",
			Help: "Total reports rendered by format.",
		}, []string{"format"}),
	}

	m.registry.MustRegister(
		m.documentsIngested,
		m.scoringRuns,
		m.scoringDuration,
		m.reportsRendered,
	)

	return m
}

// Handler serves this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) DocumentIngested() {
	if m == nil {
		return
	}
	m.documentsIngested.Inc()
}

func (m *Metrics) ScoringRun(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.scoringRuns.WithLabelValues(outcome).Inc()
	m.scoringDuration.Observe(d.Seconds())
}

func (m *Metrics) ReportRendered(format string) {
	if m == nil {
		return
	}
	m.reportsRendered.WithLabelValues(format).Inc()
}
