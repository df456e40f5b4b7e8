// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	kitendpoint "github.com/go-kit/kit/endpoint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDiscardMetrics(t *testing.T) {
	assert := assert.New(t)
	m := DiscardMetrics()

	assert.NotPanics(func() {
		m.Invocations.With(ServiceLabel, "s").Add(1.0)
		m.Duration.With(ServiceLabel, "s").Observe(1.0)
	})
}

func TestNewMetricsDuplicate(t *testing.T) {
	var (
		assert   = assert.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	_, err := NewMetrics(registry)
	assert.NoError(err)

	_, err = NewMetrics(registry)
	assert.Error(err)
}

func TestInstrument(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	m, err := NewMetrics(registry)
	require.NoError(err)

	e := NewBuilder().
		WithLogger(zaptest.NewLogger(t)).
		WithMetrics(m).
		Bind(Service{Name: "echo", Handlers: map[string]kitendpoint.Endpoint{"echo": echo}}).
		Build()

	start := time.Unix(1700000000, 0)
	e.now = func() time.Time { return start }
	e.since = func(actual time.Time) time.Duration {
		assert.Equal(start, actual)
		return 250 * time.Millisecond
	}

	for repeat := 0; repeat < 2; repeat++ {
		e.HandleWithOptions(httptest.NewRequest("POST", "/invoke/echo/echo", strings.NewReader("ping")), HandleOptions{ProtocolMode: RequestResponse})
	}

	e.HandleWithOptions(httptest.NewRequest("POST", "/invoke/echo/missing", nil), HandleOptions{ProtocolMode: RequestResponse})

	// routes other than invoke are not instrumented
	e.HandleWithOptions(httptest.NewRequest("GET", HealthPath, nil), HandleOptions{ProtocolMode: RequestResponse})

	assert.NoError(testutil.GatherAndCompare(
		registry,
		strings.NewReader(`
# HELP endpoint_invocation_count Count of handler invocations, by service, handler, and response code
# TYPE endpoint_invocation_count counter
endpoint_invocation_count{code="200",handler="echo",service="echo"} 2
endpoint_invocation_count{code="404",handler="missing",service="echo"} 1
`),
		InvocationCount,
	))

	assert.Equal(2, testutil.CollectAndCount(registry, InvocationDuration))
}
