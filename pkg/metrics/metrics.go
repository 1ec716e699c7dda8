// Package metrics содержит Prometheus-метрики сервиса достижений.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "achievements"

// Metrics хранит собственный реестр и все метрики сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	awardsCreated       prometheus.Counter
	awardsRepeated      prometheus.Counter
	statsDuration       *prometheus.HistogramVec
}

// New создает метрики в новом реестре; withRuntime добавляет метрики Go-рантайма и процесса
func New(withRuntime bool) *Metrics {
	registry := prometheus.NewRegistry()
	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(registry)
	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		awardsCreated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "awards",
			Name:      "created_total",
			Help:      "Total number of newly created award records",
		}),
		awardsRepeated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "awards",
			Name:      "repeated_total",
			Help:      "Total number of award requests answered with an existing record",
		}),
		statsDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stats",
			Name:      "query_duration_seconds",
			Help:      "Statistics computation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"statistic"}),
	}
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAward учитывает результат выдачи достижения
func (m *Metrics) ObserveAward(created bool) {
	if m == nil {
		return
	}
	if created {
		m.awardsCreated.Inc()
		return
	}
	m.awardsRepeated.Inc()
}

// ObserveStat учитывает время вычисления статистики
func (m *Metrics) ObserveStat(name string, started time.Time) {
	if m == nil {
		return
	}
	m.statsDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
}

// GinMiddleware считает HTTP-запросы по шаблону маршрута
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
