package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsAccepted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "whynotact", Name: "submissions_accepted_total", Help: "Number of accepted submissions by kind."},
		[]string{"kind"},
	)
	SubmissionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "whynotact", Name: "submissions_rejected_total", Help: "Number of rejected submissions by kind and reason."},
		[]string{"kind", "reason"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "whynotact", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "whynotact", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SubmissionsAccepted)
	reg.MustRegister(SubmissionsRejected)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

func SubmissionAccepted(kind string) {
	SubmissionsAccepted.WithLabelValues(kind).Inc()
}

// SubmissionRejected records a rejection labeled by validation error code, or
// "persistence" for store failures.
func SubmissionRejected(kind, reason string) {
	SubmissionsRejected.WithLabelValues(kind, reason).Inc()
}
