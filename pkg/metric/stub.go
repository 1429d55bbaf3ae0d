package metric

import (
	"time"
)

type metricsStub struct{}

func NewStub() Metrics {
	return metricsStub{}
}

func (s metricsStub) With(_ Labels) Metrics {
	return s
}

func (s metricsStub) WithLabel(_, _ string) Metrics {
	return s
}

func (s metricsStub) Increment(_ string) {}

func (s metricsStub) Count(_ string, _ int) {}

func (s metricsStub) Gauge(_ string, _ float64) {}

func (s metricsStub) Duration(_ string, _ time.Duration) {}
