// Package metrics holds the Prometheus collectors of the bot. They are
// registered on the default registry and served by promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "greetbot"

var (
	// Greetings counts greet requests by kind (start, end) and result
	// (posted, holiday, error).
	Greetings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "greetings_total",
		Help:      "Greet requests by kind and result.",
	}, []string{"kind", "result"})

	// ReactionUpdates counts reaction events by outcome.
	ReactionUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reaction_updates_total",
		Help:      "Reaction events by outcome.",
	}, []string{"result"})

	// CacheLookups counts cache reads by source and hit/miss.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by source and result.",
	}, []string{"source", "result"})

	// UpstreamErrors counts failed calls to Slack, Sheets and the holiday API.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Failed upstream calls by source.",
	}, []string{"source"})
)

// CacheResult returns the label value for a cache lookup.
func CacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
