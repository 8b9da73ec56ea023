package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Content Metrics
	BlogViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_views_total",
			Help: "Total number of blog views",
		},
		[]string{"slug"},
	)

	ContentOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_operations_total",
			Help: "Total number of content operations",
		},
		[]string{"resource", "operation"}, // projects/blogs/skills x create/update/delete
	)

	// Outreach Metrics
	OutreachEmailsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_emails_logged_total",
			Help: "Total number of outreach emails logged",
		},
	)

	FollowUpNotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_follow_up_notifications_total",
			Help: "Total number of follow-up reminder notifications created",
		},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"}, // success/failure
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // db, auth, validation, ai
	)
)

// MetricsMiddleware handles basic HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		ActiveRequests.Inc()
		defer ActiveRequests.Dec()

		c.Next()

		// Use the route template so path parameters don't explode the
		// label cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// TrackContentOperation increments the content operation counter
func TrackContentOperation(resource, operation string) {
	ContentOperationsTotal.WithLabelValues(resource, operation).Inc()
}

// TrackAuthAttempt records authentication attempts
func TrackAuthAttempt(status string) {
	AuthAttempts.WithLabelValues(status).Inc()
}

// TrackError increments the error counter for a type
func TrackError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
