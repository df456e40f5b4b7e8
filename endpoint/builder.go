// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"net/http"
	"time"

	kitendpoint "github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/sallust"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// TracingOperation is the span name used when tracing is enabled.
const TracingOperation = "endpoint"

// Builder accumulates services and settings for an Endpoint.  The zero value is not usable;
// use NewBuilder.
type Builder struct {
	services  map[string]Service
	logger    *zap.Logger
	metrics   Metrics
	tracing   bool
	chunkSize int
}

// NewBuilder produces a Builder with no services, the default logger, and discarded metrics.
func NewBuilder() *Builder {
	return &Builder{
		services: make(map[string]Service),
		logger:   sallust.Default(),
		metrics:  DiscardMetrics(),
	}
}

// Bind adds a service.  A service bound with the same name as an earlier one replaces it.
// Nil handlers are ignored.  This method panics if the service has no name.
func (b *Builder) Bind(s Service) *Builder {
	if len(s.Name) == 0 {
		panic("A service name is required")
	}

	handlers := make(map[string]kitendpoint.Endpoint, len(s.Handlers))
	for name, h := range s.Handlers {
		if h != nil {
			handlers[name] = h
		}
	}

	b.services[s.Name] = Service{Name: s.Name, Handlers: handlers}
	return b
}

// WithLogger sets the base logger.  A nil logger reverts to sallust.Default().
func (b *Builder) WithLogger(l *zap.Logger) *Builder {
	if l != nil {
		b.logger = l
	} else {
		b.logger = sallust.Default()
	}

	return b
}

// WithMetrics sets the invocation metrics.  Any nil instrument is replaced with a discard instrument.
func (b *Builder) WithMetrics(m Metrics) *Builder {
	d := DiscardMetrics()
	if m.Invocations == nil {
		m.Invocations = d.Invocations
	}

	if m.Duration == nil {
		m.Duration = d.Duration
	}

	b.metrics = m
	return b
}

// WithTracing toggles OpenTelemetry instrumentation of the routes.
func (b *Builder) WithTracing(enabled bool) *Builder {
	b.tracing = enabled
	return b
}

// WithChunkSize sets the maximum size of response data frames.  A nonpositive value
// means request/response bodies are emitted as a single frame and streamed bodies use
// frame.DefaultChunkSize.
func (b *Builder) WithChunkSize(n int) *Builder {
	b.chunkSize = n
	return b
}

// Build produces an immutable Endpoint.  The Builder may continue to be used afterward
// without affecting Endpoints it has already built.
func (b *Builder) Build() *Endpoint {
	services := make(map[string]Service, len(b.services))
	for name, s := range b.services {
		services[name] = s
	}

	e := &Endpoint{
		services:  services,
		manifest:  newManifest(services),
		logger:    b.logger,
		metrics:   b.metrics,
		chunkSize: b.chunkSize,
		now:       time.Now,
		since:     time.Since,
	}

	var h http.Handler = e.newRouter()
	if b.tracing {
		h = otelhttp.NewHandler(h, TracingOperation)
	}

	e.handler = h
	return e
}
