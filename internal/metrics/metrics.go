// Package metrics exposes Prometheus instruments for the call focus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheStale = "stale"
	CacheMiss  = "miss"
)

var (
	// tokenRequestsTotal counts get_token outcomes.
	// Labels:
	//   - outcome: success, not_configured, invalid_json, body_too_large,
	//     missing_parameter, identity_rejected, not_member, directory_unavailable,
	//     session_creation_failed, session_join_failed, internal_error
	tokenRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callfocus_token_requests_total",
			Help: "Total number of token issuance requests by outcome",
		},
		[]string{"outcome"},
	)

	meetingCacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callfocus_meeting_cache_lookups_total",
			Help: "Meeting binding cache lookups by result (hit, stale, miss)",
		},
		[]string{"result"},
	)

	meetingsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callfocus_meetings_created_total",
			Help: "Backend meetings created",
		},
	)

	meetingExpiredRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callfocus_meeting_expired_retries_total",
			Help: "Token requests that hit an expired meeting and retried once",
		},
	)

	// backendRequestDuration tracks outbound calls.
	// Labels:
	//   - operation: create_meeting, get_meeting, add_participant, userinfo, membership, displayname
	backendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "callfocus_backend_request_duration_seconds",
			Help:    "Duration of outbound requests to the meeting backend and homeserver",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(tokenRequestsTotal)
	prometheus.MustRegister(meetingCacheLookupsTotal)
	prometheus.MustRegister(meetingsCreatedTotal)
	prometheus.MustRegister(meetingExpiredRetriesTotal)
	prometheus.MustRegister(backendRequestDuration)
}

func RecordTokenRequest(outcome string) {
	tokenRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordCacheLookup(result string) {
	meetingCacheLookupsTotal.WithLabelValues(result).Inc()
}

func RecordMeetingCreated() {
	meetingsCreatedTotal.Inc()
}

func RecordExpiredRetry() {
	meetingExpiredRetriesTotal.Inc()
}

// ObserveBackend records the time since start under operation.
//
//	defer metrics.ObserveBackend("create_meeting", time.Now())
func ObserveBackend(operation string, start time.Time) {
	backendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
