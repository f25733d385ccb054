package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_admissions_total",
			Help: "Total number of admission decisions by candidate kind, outcome and rejection reason",
		},
		[]string{"kind", "outcome", "reason"},
	)

	AdmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_admission_duration_seconds",
			Help:    "Time spent deciding an admission, lock waits included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	RoomsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_rooms_created_total",
			Help: "Total number of rooms created",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordAdmission counts one decision. reason is empty for accepted candidates.
func RecordAdmission(kind, outcome, reason string, duration float64) {
	AdmissionsTotal.WithLabelValues(kind, outcome, reason).Inc()
	AdmissionDuration.WithLabelValues(kind).Observe(duration)
}

func RecordRoomCreated() {
	RoomsCreatedTotal.Inc()
}
