// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	InvocationCount    = "endpoint_invocation_count"
	InvocationDuration = "endpoint_invocation_duration_seconds"

	ServiceLabel = "service"
	HandlerLabel = "handler"
	CodeLabel    = "code"
)

// Metrics holds the instruments an Endpoint updates for each handler invocation.
type Metrics struct {
	// Invocations is labeled by service, handler, and response code.
	Invocations metrics.Counter

	// Duration is labeled by service and handler.
	Duration metrics.Histogram
}

// DiscardMetrics returns a Metrics that records nothing.  This is the default for a Builder.
func DiscardMetrics() Metrics {
	return Metrics{
		Invocations: discard.NewCounter(),
		Duration:    discard.NewHistogram(),
	}
}

// NewMetrics creates Prometheus-backed metrics and registers them with the given registerer.
func NewMetrics(registerer prometheus.Registerer) (Metrics, error) {
	invocations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: InvocationCount,
			Help: "Count of handler invocations, by service, handler, and response code",
		},
		[]string{ServiceLabel, HandlerLabel, CodeLabel},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    InvocationDuration,
			Help:    "Time spent in handler invocations, by service and handler",
			Buckets: prometheus.DefBuckets,
		},
		[]string{ServiceLabel, HandlerLabel},
	)

	for _, c := range []prometheus.Collector{invocations, duration} {
		if err := registerer.Register(c); err != nil {
			return Metrics{}, err
		}
	}

	return Metrics{
		Invocations: kitprometheus.NewCounter(invocations),
		Duration:    kitprometheus.NewHistogram(duration),
	}, nil
}
