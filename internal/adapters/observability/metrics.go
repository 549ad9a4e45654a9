package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "landing", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ViewStoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "view_store_events_total", Help: "Page view store loads/misses/saves/deletes."},
		[]string{"store", "event"}, // event: hit|miss|set|del
	)
	CarouselMoves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "carousel_moves_total", Help: "Feature carousel navigation."},
		[]string{"direction"}, // next|prev|jump
	)
	BookingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "booking_requests_total", Help: "Booking form submissions."},
		[]string{"outcome"}, // acknowledged|blocked|limited
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ViewStoreEvents, CarouselMoves, BookingRequests)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// NewMetricsServer returns a standalone listener serving /metrics on addr.
func NewMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(store, event string) { // event: hit|miss|set|del
	ViewStoreEvents.WithLabelValues(store, event).Inc()
}

func ObserveCarousel(direction string) {
	CarouselMoves.WithLabelValues(direction).Inc()
}

func ObserveBooking(outcome string) {
	BookingRequests.WithLabelValues(outcome).Inc()
}
