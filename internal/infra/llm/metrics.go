package llm

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records completion metrics. Tests inject a fake.
type MetricsRecorder interface {
	// RecordCompletion records one completion call by provider and outcome.
	RecordCompletion(provider string, success bool, duration time.Duration)

	// RecordResponseLength records the completion length in characters.
	RecordResponseLength(provider string, length int)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	completions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	length      *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateCounterVec returns the registered collector when one already exists.
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// getOrCreateHistogramVec returns the registered collector when one already exists.
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

// NewPrometheusMetrics returns the process-wide recorder.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			completions: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "llm_completions_total",
				Help: "Total number of LLM completion calls",
			}, []string{"provider", "status"}),
			duration: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "llm_completion_duration_seconds",
				Help:    "Time taken by LLM completion calls",
				Buckets: []float64{0.5, 1, 2, 4, 8, 16, 32, 60},
			}, []string{"provider"}),
			length: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "llm_response_length_characters",
				Help:    "Distribution of completion lengths in characters (Unicode runes)",
				Buckets: []float64{100, 300, 600, 1200, 2400, 4800},
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordCompletion implements MetricsRecorder.
func (m *PrometheusMetrics) RecordCompletion(provider string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.completions.WithLabelValues(provider, status).Inc()
	m.duration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordResponseLength implements MetricsRecorder.
func (m *PrometheusMetrics) RecordResponseLength(provider string, length int) {
	m.length.WithLabelValues(provider).Observe(float64(length))
}
