package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	reportsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arcano_reports_created_total",
		Help: "Total number of intelligence reports created",
	})
	reportViewsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcano_report_views_total",
		Help: "Total number of report accesses, downloads and PDF views",
	}, []string{"kind"})
	custodiesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arcano_custodies_created_total",
		Help: "Total number of equipment custodies created",
	})
	itemsReturnedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcano_items_returned_total",
		Help: "Total number of custody items returned, by equipment status",
	}, []string{"status"})
	notificationsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcano_notifications_created_total",
		Help: "Total number of in-app notifications created",
	}, []string{"type"})
	emailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcano_emails_total",
		Help: "Total number of outbound emails by delivery status",
	}, []string{"status"})
	shareAccessTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcano_share_access_total",
		Help: "Total number of report share access attempts",
	}, []string{"result"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arcano_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		reportsCreatedTotal,
		reportViewsTotal,
		custodiesCreatedTotal,
		itemsReturnedTotal,
		notificationsCreatedTotal,
		emailsTotal,
		shareAccessTotal,
		requestDuration,
	)
}

// Handler exposes registry over HTTP.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// IncReportCreated increments the created reports counter.
func IncReportCreated() { reportsCreatedTotal.Inc() }

// IncReportView counts an access of the given kind (access, download, view_pdf).
func IncReportView(kind string) { reportViewsTotal.WithLabelValues(kind).Inc() }

// IncCustodyCreated increments the created custodies counter.
func IncCustodyCreated() { custodiesCreatedTotal.Inc() }

// IncItemReturned counts a returned item by its equipment status.
func IncItemReturned(status string) { itemsReturnedTotal.WithLabelValues(status).Inc() }

// IncNotification counts a created notification by type.
func IncNotification(nType string) { notificationsCreatedTotal.WithLabelValues(nType).Inc() }

// IncEmail counts an email by delivery status.
func IncEmail(status string) { emailsTotal.WithLabelValues(status).Inc() }

// IncShareAccess counts a share access attempt by result.
func IncShareAccess(result string) { shareAccessTotal.WithLabelValues(result).Inc() }

// ObserveRequest records the latency of a handled HTTP request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
