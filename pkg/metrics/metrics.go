package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRateLimited     *prometheus.CounterVec

	// Database
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge

	// Availability
	AvailabilityDecisions *prometheus.CounterVec
	MaxDateIterations     *prometheus.HistogramVec
	HolidayCacheRequests  *prometheus.CounterVec
	Reservations          *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		HTTPRateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_rate_limited_total",
			Help:        "Requests rejected by the rate limiter",
			ConstLabels: constLabels,
		}, []string{"path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}),

		AvailabilityDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_decisions_total",
			Help:        "Availability decisions by booking type and reason",
			ConstLabels: constLabels,
		}, []string{"booking_type", "reason"}),
		MaxDateIterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "max_date_search_iterations",
			Help:        "Iterations spent by the max bookable date search",
			ConstLabels: constLabels,
			Buckets:     []float64{1, 7, 31, 90, 180, 365, 730, 1000},
		}, []string{"exhausted"}),
		HolidayCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "holiday_cache_requests_total",
			Help:        "Holiday calendar cache lookups",
			ConstLabels: constLabels,
		}, []string{"result"}),
		Reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Reservation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRateLimited,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.AvailabilityDecisions,
		m.MaxDateIterations,
		m.HolidayCacheRequests,
		m.Reservations,
	)

	return m
}

// ObserveDecision учитывает решение о доступности. Безопасен для nil
func (m *Metrics) ObserveDecision(bookingType, reason string) {
	if m == nil {
		return
	}
	if bookingType == "" {
		bookingType = "unknown"
	}
	m.AvailabilityDecisions.WithLabelValues(bookingType, reason).Inc()
}

// ObserveMaxDateSearch учитывает количество итераций поиска максимальной даты. Безопасен для nil
func (m *Metrics) ObserveMaxDateSearch(iterations int, exhausted bool) {
	if m == nil {
		return
	}
	label := "false"
	if exhausted {
		label = "true"
	}
	m.MaxDateIterations.WithLabelValues(label).Observe(float64(iterations))
}

// ObserveReservation учитывает результат попытки резервирования. Безопасен для nil
func (m *Metrics) ObserveReservation(outcome string) {
	if m == nil {
		return
	}
	m.Reservations.WithLabelValues(outcome).Inc()
}
