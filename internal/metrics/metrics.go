// Package metrics provides Prometheus instrumentation for the dating
// backend. It exposes counters for like and match throughput and a
// histogram for candidate search latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LikesRecordedTotal counts recorded likes, labeled by outcome:
	// "liked", "matched", or "repeat".
	LikesRecordedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dating_likes_recorded_total",
		Help: "Total number of likes recorded",
	}, []string{"outcome"})

	// MatchesCreatedTotal counts mutual matches created.
	MatchesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dating_matches_created_total",
		Help: "Total number of mutual matches created",
	})

	// CandidateSearchDuration records interest-ranked candidate search
	// latency in seconds.
	CandidateSearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dating_candidate_search_duration_seconds",
		Help:    "Interest-ranked candidate search latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	// PhotoUploadsTotal counts uploaded profile photos.
	PhotoUploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dating_photo_uploads_total",
		Help: "Total number of profile photos uploaded",
	})
)

func init() {
	prometheus.MustRegister(
		LikesRecordedTotal,
		MatchesCreatedTotal,
		CandidateSearchDuration,
		PhotoUploadsTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
