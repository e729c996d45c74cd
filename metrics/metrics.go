package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeBooked  = "booked"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

const (
	SourceNavigation = "navigation"
	SourceSession    = "session"
	SourceNone       = "none"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strajk_submissions_total",
			Help: "Total number of booking submissions by outcome",
		},
		[]string{"outcome"},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strajk_validation_failures_total",
			Help: "Total number of rejected booking drafts by reason",
		},
		[]string{"reason"},
	)

	ConfirmationsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strajk_confirmations_resolved_total",
			Help: "Total number of confirmation views by data source",
		},
		[]string{"source"},
	)

	BookingAPIDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "strajk_booking_api_duration_seconds",
			Help:    "Booking API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RecordSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

func RecordValidationFailure(reason string) {
	ValidationFailuresTotal.WithLabelValues(reason).Inc()
}

func RecordConfirmationResolved(source string) {
	ConfirmationsResolvedTotal.WithLabelValues(source).Inc()
}

func ObserveBookingAPI(seconds float64) {
	BookingAPIDuration.Observe(seconds)
}
