// Package metrics provides Prometheus metrics for newsdeck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshTotal counts headline refresh passes by outcome.
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdeck",
			Name:      "refresh_total",
			Help:      "Total number of headline refresh passes",
		},
		[]string{"outcome"},
	)

	// SectionScrapeFailures counts section scrapes that yielded nothing.
	SectionScrapeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdeck",
			Name:      "section_scrape_failures_total",
			Help:      "Total number of failed section scrapes",
		},
		[]string{"section"},
	)

	// HeadlinesScraped observes headline counts per refresh.
	HeadlinesScraped = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newsdeck",
			Name:      "headlines_scraped",
			Help:      "Distribution of headline counts per refresh",
			Buckets:   []float64{0, 5, 10, 20, 40, 80, 160},
		},
	)

	// CacheLookups counts bundle cache reads by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdeck",
			Name:      "cache_lookups_total",
			Help:      "Total number of headline cache lookups",
		},
		[]string{"result"},
	)

	// SummaryResolutions counts summary requests by how they were served.
	SummaryResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdeck",
			Name:      "summary_resolutions_total",
			Help:      "Total number of summary resolutions",
		},
		[]string{"outcome"},
	)

	// ArticleFetchAttempts counts per-strategy article fetch attempts.
	ArticleFetchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdeck",
			Name:      "article_fetch_attempts_total",
			Help:      "Total number of article fetch attempts",
		},
		[]string{"strategy", "status"},
	)

	// CacheBackendUp tracks cache backend reachability.
	CacheBackendUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "newsdeck",
			Name:      "cache_backend_up",
			Help:      "Cache backend reachability (1 = reachable, 0 = unreachable)",
		},
	)
)

// RecordCacheLookup records one bundle cache read.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}
