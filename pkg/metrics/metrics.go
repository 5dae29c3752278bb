package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит все prometheus-коллекторы сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	holdsActive         prometheus.Gauge
	holdsAcquiredTotal  prometheus.Counter
	holdsReleasedTotal  prometheus.Counter
	holdsExpiredTotal   prometheus.Counter
	holdsPromotedTotal  prometheus.Counter
	slotConflictsTotal  prometheus.Counter
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		holdsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_holds_active",
			Help:        "Number of currently active slot holds",
			ConstLabels: constLabels,
		}),

		holdsAcquiredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_holds_acquired_total",
			Help:        "Total number of slot holds acquired",
			ConstLabels: constLabels,
		}),

		holdsReleasedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_holds_released_total",
			Help:        "Total number of slot holds released by the customer",
			ConstLabels: constLabels,
		}),

		holdsExpiredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_holds_expired_total",
			Help:        "Total number of slot holds expired by the sweep",
			ConstLabels: constLabels,
		}),

		holdsPromotedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_holds_promoted_total",
			Help:        "Total number of slot holds promoted into committed reservations",
			ConstLabels: constLabels,
		}),

		slotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Total number of bookings rejected due to a slot conflict",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// HoldAcquired фиксирует создание нового холда
func (m *Metrics) HoldAcquired() {
	m.holdsAcquiredTotal.Inc()
	m.holdsActive.Inc()
}

// HoldReleased фиксирует освобождение холда пользователем
func (m *Metrics) HoldReleased() {
	m.holdsReleasedTotal.Inc()
	m.holdsActive.Dec()
}

// HoldsExpired фиксирует удаление протухших холдов фоновой очисткой
func (m *Metrics) HoldsExpired(count int) {
	m.holdsExpiredTotal.Add(float64(count))
	m.holdsActive.Sub(float64(count))
}

// HoldPromoted фиксирует превращение холда в подтвержденное бронирование
func (m *Metrics) HoldPromoted() {
	m.holdsPromotedTotal.Inc()
	m.holdsActive.Dec()
}

// SlotConflict фиксирует проигранную гонку за слот
func (m *Metrics) SlotConflict() {
	m.slotConflictsTotal.Inc()
}
