package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	remindersTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_triggered_total",
			Help: "Total number of reminders that became active",
		},
		[]string{"kind"},
	)

	remindersDismissed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_dismissed_total",
			Help: "Total number of reminders dismissed",
		},
		[]string{"kind"},
	)

	recordsSnoozed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_snoozed_total",
			Help: "Total number of snooze operations",
		},
		[]string{"kind"},
	)

	accessDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "access_denied_total",
			Help: "Total number of requests blocked by the access gate",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordReminderTriggered(kind string) {
	remindersTriggered.WithLabelValues(kind).Inc()
}

func RecordReminderDismissed(kind string) {
	remindersDismissed.WithLabelValues(kind).Inc()
}

func RecordSnooze(kind string) {
	recordsSnoozed.WithLabelValues(kind).Inc()
}

func RecordAccessDenied() {
	accessDenied.Inc()
}
