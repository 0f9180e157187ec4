// Package metrics exposes Prometheus instruments for the activity feed and
// dashboard endpoints. Instruments register with the default registry on
// import; /metrics serves them through promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	feedBuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "volunteerhub",
		Subsystem: "feed",
		Name:      "builds_total",
		Help:      "Number of times the activity feed was rebuilt from storage.",
	})
	feedSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "volunteerhub",
		Subsystem: "feed",
		Name:      "activities",
		Help:      "Number of activities in the most recently built feed.",
	})
	droppedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "volunteerhub",
		Subsystem: "feed",
		Name:      "dropped_records_total",
		Help:      "Records skipped by the normalizer because they were malformed.",
	}, []string{"kind"})
	queryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "volunteerhub",
		Subsystem: "feed",
		Name:      "query_duration_seconds",
		Help:      "Time spent filtering, sorting, and paging the feed.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	unmatchedProvinces = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "volunteerhub",
		Subsystem: "map",
		Name:      "unmatched_members",
		Help:      "Members whose province matched no gazetteer entry on the last map build.",
	})
)

func init() {
	prometheus.MustRegister(feedBuilds, feedSize, droppedRecords, queryDuration, unmatchedProvinces)
}

// RecordFeedBuild counts a feed rebuild and its resulting size.
func RecordFeedBuild(size int) {
	feedBuilds.Inc()
	feedSize.Set(float64(size))
}

// RecordDropped counts a malformed record of the given kind.
func RecordDropped(kind string) {
	droppedRecords.WithLabelValues(kind).Inc()
}

// ObserveQuery records how long a feed query took.
func ObserveQuery(d time.Duration) {
	queryDuration.Observe(d.Seconds())
}

// RecordUnmatched sets the number of members left off the volunteer map.
func RecordUnmatched(n int) {
	unmatchedProvinces.Set(float64(n))
}
