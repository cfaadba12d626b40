// Package metrics defines Prometheus metrics for card-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cardtracker"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the liveness endpoint last reported healthy (1) or not (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness endpoint last reported ready (1) or not (0).",
	})
)

// Import metrics. Skips are labeled by cause: "existing", "batch", "server".
var (
	ImportAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_accepted_total",
		Help:      "Total number of cards accepted by bulk imports.",
	})

	ImportSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_skipped_total",
		Help:      "Total number of cards skipped during bulk imports.",
	}, []string{"cause"})

	ImportFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_failures_total",
		Help:      "Total number of bulk import batches that failed entirely.",
	})

	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "import_duration_seconds",
		Help:      "Duration of bulk import operations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ImportSchemaFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_schema_fallbacks_total",
		Help:      "Total number of reduced-field retry attempts after a schema error.",
	})
)

// Image extraction metrics.
var (
	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duration of vision extraction calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ExtractionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_failures_total",
		Help:      "Total number of vision extraction failures.",
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_queue_depth",
		Help:      "Number of images currently awaiting processing.",
	})
)

// Vision API metrics.
var (
	VisionAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vision_api_calls_total",
		Help:      "Total cumulative vision API calls.",
	})

	VisionDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vision_daily_usage",
		Help:      "Current daily vision API call count within the rolling 24-hour window.",
	})

	VisionDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vision_daily_limit_hits_total",
		Help:      "Total number of times the daily vision API limit was reached.",
	})
)
