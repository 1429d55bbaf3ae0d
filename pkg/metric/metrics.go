package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(Labels) Metrics
		WithLabel(name, value string) Metrics
		Increment(key string)
		Count(key string, value int)
		Gauge(key string, value float64)
		Duration(key string, duration time.Duration)
	}
)
