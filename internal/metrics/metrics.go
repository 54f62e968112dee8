// Package metrics holds the Prometheus instruments used across the app.
// All collectors are registered with the global registry, so the handler
// package only has to mount promhttp on /metrics to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SeedRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivo_seed_runs_total",
			Help: "Seed gate runs by result (current, seeded, failed).",
		}, []string{"result"})

	CatalogTopics = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vivo_catalog_topics",
			Help: "Number of topics in the catalog after the last seed check.",
		})

	TopicSamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivo_topic_samples_total",
			Help: "Topic sample requests by language.",
		}, []string{"language"})

	PreferenceChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivo_preference_changes_total",
			Help: "Successful preference changes by key.",
		}, []string{"key"})

	AssistantRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vivo_assistant_requests_total",
			Help: "Assistant topic requests by outcome.",
		}, []string{"outcome"})

	AssistantRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vivo_assistant_request_duration_seconds",
			Help:    "Latency of chat-completion calls that reached the provider.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		})
)

func init() {
	prometheus.MustRegister(
		SeedRunsTotal,
		CatalogTopics,
		TopicSamplesTotal,
		PreferenceChangesTotal,
		AssistantRequestsTotal,
		AssistantRequestDuration,
	)
}
