package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_streamer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_streamer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_streamer_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Streaming metrics
var (
	StreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_streamer_stream_requests_total",
			Help: "Total number of stream requests by outcome",
		},
		[]string{"outcome"}, // "full", "partial", "unsatisfiable", "malformed", "error"
	)

	StreamBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "video_streamer_stream_bytes_total",
			Help: "Total number of video bytes written to clients",
		},
	)
)

// Encoder job metrics
var (
	EncodeJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_streamer_encode_jobs_total",
			Help: "Total number of video creation jobs by final status",
		},
		[]string{"status"}, // "completed", "failed", "rejected"
	)

	EncodeJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "video_streamer_encode_job_duration_seconds",
			Help:    "Encoder invocation duration in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	EncodeJobsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "video_streamer_encode_jobs_in_progress",
			Help: "Number of encoder invocations currently running",
		},
	)
)

// Image validation metrics
var (
	ImageValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_streamer_image_validations_total",
			Help: "Total number of per-image validation results",
		},
		[]string{"result"}, // "valid", "missing", "unreadable", "unsupported"
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "video_streamer_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric.
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// InitializeMetrics pre-populates expected label combinations so every series
// is exported from the first Prometheus scrape.
func InitializeMetrics() {
	for _, outcome := range []string{"full", "partial", "unsatisfiable", "malformed", "error"} {
		StreamRequestsTotal.WithLabelValues(outcome)
	}

	for _, status := range []string{"completed", "failed", "rejected"} {
		EncodeJobsTotal.WithLabelValues(status)
	}

	for _, result := range []string{"valid", "missing", "unreadable", "unsupported"} {
		ImageValidationsTotal.WithLabelValues(result)
	}
}
