// Package metrics counts what a generation run produced. The counters live
// in their own registry and are written as a node exporter textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/denizgursoy/senaryo/internal/query"
)

const namespace = "senaryo"

type Metrics struct {
	registry *prometheus.Registry

	runs         prometheus.Counter
	features     prometheus.Counter
	variants     *prometheus.CounterVec
	testCases    *prometheus.CounterVec
	problems     *prometheus.CounterVec
	queryLookups *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		features: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "features_total",
			Help:      "Features test cases were generated for.",
		}),
		variants: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "variants_total",
			Help:      "Variants read, by whether they were generated or skipped.",
		}, []string{"status"}),
		testCases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "test_cases_total",
			Help:      "Generated test cases, by expected outcome.",
		}, []string{"outcome"}),
		problems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "problems_total",
			Help:      "Errors and warnings reported during generation.",
		}, []string{"severity"}),
		queryLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_cache_lookups_total",
			Help:      "Query cache lookups, by source and result.",
		}, []string{"source", "result"}),
		runs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Generation runs.",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RunStarted() {
	m.runs.Inc()
}

func (m *Metrics) FeatureGenerated() {
	m.features.Inc()
}

func (m *Metrics) VariantSkipped() {
	m.variants.WithLabelValues("skipped").Inc()
}

func (m *Metrics) VariantGenerated() {
	m.variants.WithLabelValues("generated").Inc()
}

func (m *Metrics) TestCaseGenerated(shouldFail bool) {
	outcome := "pass"
	if shouldFail {
		outcome = "fail"
	}
	m.testCases.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ProblemsReported(errors, warnings int) {
	m.problems.WithLabelValues("error").Add(float64(errors))
	m.problems.WithLabelValues("warning").Add(float64(warnings))
}

// ObserveQueryLookup records a query cache lookup. It is meant to be
// registered with query.WithLookupObserver.
func (m *Metrics) ObserveQueryLookup(source query.Source, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.queryLookups.WithLabelValues(string(source), result).Inc()
}

// WriteToTextfile writes every counter to path in the text exposition
// format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
