// Package metrics — счётчики вычислений в Prometheus-формате. Сервера нет:
// по завершении процесса реестр пишется в textfile (node_exporter textfile collector).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Режимы выполнения и статусы для меток.
const (
	ModeSync     = "sync"
	ModeIsolated = "isolated"
	ModeCached   = "cached"

	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics — собственный реестр с метриками движка.
type Metrics struct {
	reg      *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New создаёт реестр и регистрирует метрики.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		reg: reg,
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculations_total",
				Help: "Total number of calculations",
			},
			[]string{"operation", "mode", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculation_duration_seconds",
				Help:    "Calculation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "mode"},
		),
	}
}

// Observe учитывает одно вычисление. Безопасен на nil.
func (m *Metrics) Observe(operation, mode, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(operation, mode, status).Inc()
	m.duration.WithLabelValues(operation, mode).Observe(d.Seconds())
}

// WriteFile пишет текущие значения в файл в текстовом формате Prometheus.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
