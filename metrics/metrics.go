// Package metrics exposes analysis and fetch activity as Prometheus
// collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seo-optimizer/contentseo/rules"
)

// Metrics holds the service collectors. It implements analyzer.Observer.
type Metrics struct {
	registry *prometheus.Registry

	Analyses         prometheus.Counter
	Keyphrases       prometheus.Counter
	RuleResults      *prometheus.CounterVec
	RulePanics       *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	FetchDuration    prometheus.Histogram
	FetchCache       *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentseo_analyses_total",
			Help: "Total number of multi-keyphrase analyses",
		}),
		Keyphrases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentseo_keyphrases_total",
			Help: "Total number of keyphrases analyzed",
		}),
		RuleResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contentseo_rule_results_total",
			Help: "Rule evaluations by rule and status",
		}, []string{"rule", "status"}),
		RulePanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contentseo_rule_panics_total",
			Help: "Rule checks that panicked and were skipped",
		}, []string{"rule"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contentseo_analysis_duration_seconds",
			Help:    "Time spent analyzing all keyphrases of a request",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contentseo_fetch_duration_seconds",
			Help:    "Time spent downloading pages",
			Buckets: prometheus.DefBuckets,
		}),
		FetchCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contentseo_fetch_cache_total",
			Help: "Page fetch cache lookups by result",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.Analyses,
		m.Keyphrases,
		m.RuleResults,
		m.RulePanics,
		m.AnalysisDuration,
		m.FetchDuration,
		m.FetchCache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RuleEvaluated(ruleID string, status rules.Status) {
	m.RuleResults.WithLabelValues(ruleID, string(status)).Inc()
}

func (m *Metrics) RulePanicked(ruleID string) {
	m.RulePanics.WithLabelValues(ruleID).Inc()
}

func (m *Metrics) AnalysisCompleted(keyphrases int, elapsed time.Duration) {
	m.Analyses.Inc()
	m.Keyphrases.Add(float64(keyphrases))
	m.AnalysisDuration.Observe(elapsed.Seconds())
}

// ObserveFetch records the duration of one page download.
func (m *Metrics) ObserveFetch(d time.Duration) {
	m.FetchDuration.Observe(d.Seconds())
}

// RecordFetch counts a fetch cache hit or miss.
func (m *Metrics) RecordFetch(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.FetchCache.WithLabelValues(result).Inc()
}
