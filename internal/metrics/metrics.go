package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bwgraph_document_fetches_total",
		Help: "Traffic document fetches by source and result",
	}, []string{"source", "result"})

	DocumentFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bwgraph_document_fetch_duration_seconds",
		Help:    "Time to fetch and decode a traffic document",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	ChartsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bwgraph_charts_built_total",
		Help: "Charts built by granularity",
	}, []string{"granularity"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bwgraph_cache_lookups_total",
		Help: "Document cache lookups by result",
	}, []string{"result"})
)

func label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}

func ObserveFetch(source string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	DocumentFetches.WithLabelValues(label(source), result).Inc()
	DocumentFetchDuration.WithLabelValues(label(source)).Observe(duration.Seconds())
}

func AddChartsBuilt(granularity string, n int) {
	if n <= 0 {
		return
	}
	ChartsBuilt.WithLabelValues(label(granularity)).Add(float64(n))
}

func CacheHit() {
	CacheLookups.WithLabelValues("hit").Inc()
}

func CacheMiss() {
	CacheLookups.WithLabelValues("miss").Inc()
}
