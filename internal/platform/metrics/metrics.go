package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petclinic_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petclinic_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	appointmentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petclinic_appointment_transitions_total",
			Help: "Appointment status transitions",
		},
		[]string{"from", "to"},
	)

	appointmentConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petclinic_appointment_conflicts_total",
			Help: "Approvals blocked by a vet scheduling conflict",
		},
	)

	notificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petclinic_notifications_created_total",
			Help: "Notifications persisted by type",
		},
		[]string{"type"},
	)

	notificationsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petclinic_notifications_purged_total",
			Help: "Notifications deleted by the retention purge",
		},
	)

	rateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petclinic_rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	inventoryLowStock = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petclinic_inventory_low_stock_alerts_total",
			Help: "Inventory adjustments that crossed the reorder level",
		},
	)
)

// Handler devuelve el handler de Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordTransition(from, to string) {
	appointmentTransitions.WithLabelValues(from, to).Inc()
}

func RecordConflict() {
	appointmentConflicts.Inc()
}

func RecordNotificationCreated(notifType string) {
	notificationsCreated.WithLabelValues(notifType).Inc()
}

func RecordNotificationsPurged(n int) {
	notificationsPurged.Add(float64(n))
}

func RecordRateLimitRejection(route string) {
	rateLimitRejections.WithLabelValues(route).Inc()
}

func RecordLowStock() {
	inventoryLowStock.Inc()
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware registra métricas HTTP usando el patrón de ruta de chi
// (evita cardinalidad por IDs en el path).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		RecordRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
