package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	PrometheusMetrics interface {
		Metrics
		HTTPHandler() http.Handler
	}

	prometheusMetrics struct {
		collectors *collectors
		labels     Labels
	}

	collectors struct {
		namespace  string
		registry   *prometheus.Registry
		mutex      *sync.Mutex
		counters   map[string]*prometheus.CounterVec
		gauges     map[string]*prometheus.GaugeVec
		histograms map[string]*prometheus.HistogramVec
	}
)

// NewPrometheus creates metrics with their own registry, the collectors are created on first use.
// A metric name must be used with the same label names every time
func NewPrometheus(namespace string) PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return prometheusMetrics{
		collectors: &collectors{
			namespace:  namespace,
			registry:   registry,
			mutex:      &sync.Mutex{},
			counters:   make(map[string]*prometheus.CounterVec),
			gauges:     make(map[string]*prometheus.GaugeVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: nil,
	}
}

func (m prometheusMetrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.collectors.registry, promhttp.HandlerOpts{})
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for name, value := range m.labels {
		merged[name] = value
	}
	for name, value := range labels {
		merged[name] = value
	}

	m.labels = merged
	return m
}

func (m prometheusMetrics) WithLabel(name, value string) Metrics {
	return m.With(Labels{name: value})
}

func (m prometheusMetrics) Increment(key string) {
	m.Count(key, 1)
}

func (m prometheusMetrics) Count(key string, value int) {
	counter, err := m.collectors.counter(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	counter.Add(float64(value))
}

func (m prometheusMetrics) Gauge(key string, value float64) {
	gauge, err := m.collectors.gauge(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	gauge.Set(value)
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	histogram, err := m.collectors.histogram(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	histogram.Observe(duration.Seconds())
}

func (m prometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *collectors) counter(name string, labelNames []string) *prometheus.CounterVec {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	vec, ok := c.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: c.namespace, Name: name}, labelNames)
		c.registry.MustRegister(vec)
		c.counters[name] = vec
	}
	return vec
}

func (c *collectors) gauge(name string, labelNames []string) *prometheus.GaugeVec {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	vec, ok := c.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: c.namespace, Name: name}, labelNames)
		c.registry.MustRegister(vec)
		c.gauges[name] = vec
	}
	return vec
}

func (c *collectors) histogram(name string, labelNames []string) *prometheus.HistogramVec {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	vec, ok := c.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Name:      name,
			Buckets:   prometheus.DefBuckets,
		}, labelNames)
		c.registry.MustRegister(vec)
		c.histograms[name] = vec
	}
	return vec
}
