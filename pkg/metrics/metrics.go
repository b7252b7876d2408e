// Package metrics содержит Prometheus метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics набор метрик HTTP слоя и хранилища сущностей
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeOpDuration     *prometheus.HistogramVec
	storeFallbacksTotal *prometheus.CounterVec
}

// New регистрирует метрики в стандартном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Количество HTTP запросов",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Длительность обработки HTTP запросов",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		storeOpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "entity_store_operation_duration_seconds",
			Help:        "Длительность операций бэкенда хранилища",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"driver", "operation", "result"}),
		storeFallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "entity_store_fallbacks_total",
			Help:        "Количество чтений коллекций, вернувших значение по умолчанию",
			ConstLabels: constLabels,
		}, []string{"collection", "reason"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreOperation учитывает вызов бэкенда хранилища
func (m *Metrics) ObserveStoreOperation(driver, operation string, err error, duration time.Duration) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.storeOpDuration.WithLabelValues(driver, operation, result).Observe(duration.Seconds())
}

// IncStoreFallback учитывает чтение коллекции, вернувшее fallback
func (m *Metrics) IncStoreFallback(collection, reason string) {
	m.storeFallbacksTotal.WithLabelValues(collection, reason).Inc()
}
