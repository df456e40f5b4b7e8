// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/xmidt-org/lambdabridge/frame"
	"github.com/xmidt-org/lambdabridge/xhttp"
	"go.uber.org/zap"
)

// Interface is the behavior of anything that can process an HTTP-shaped invocation
// under a given protocol mode.
type Interface interface {
	// HandleWithOptions processes the request.  Failures are reported as responses
	// with the appropriate status code, so the returned Response is never nil.
	HandleWithOptions(*http.Request, HandleOptions) *Response
}

// Response is the outcome of HandleWithOptions: the response parts plus a lazy body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       frame.Body
}

// Endpoint is the Interface implementation produced by a Builder.  Once built, an Endpoint
// is immutable and safe for concurrent use.  The zero value behaves like an Endpoint built
// from an empty Builder.
type Endpoint struct {
	services  map[string]Service
	manifest  Manifest
	logger    *zap.Logger
	metrics   Metrics
	chunkSize int
	handler   http.Handler

	now   func() time.Time
	since func(time.Time) time.Duration
}

var _ Interface = (*Endpoint)(nil)

// emptyEndpoint backs zero value Endpoints
var emptyEndpoint = sync.OnceValue(func() *Endpoint {
	return NewBuilder().Build()
})

// HandleWithOptions dispatches the request through this endpoint's routes.
func (e *Endpoint) HandleWithOptions(r *http.Request, o HandleOptions) *Response {
	if e.handler == nil {
		return emptyEndpoint().HandleWithOptions(r, o)
	}

	r = r.WithContext(withProtocolMode(r.Context(), o.ProtocolMode))
	switch o.ProtocolMode {
	case RequestResponse:
		return e.serveBuffered(r, e.handler)

	case BidiStream:
		return e.serveStream(r)

	default:
		return e.serveBuffered(r, http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			xhttp.WriteErrorf(response, http.StatusNotImplemented, "unsupported protocol mode %s", o.ProtocolMode)
		}))
	}
}

func (e *Endpoint) serveBuffered(r *http.Request, h http.Handler) *Response {
	var writer xhttp.BufferedWriter
	h.ServeHTTP(&writer, r)

	code, header, body, err := writer.Result(e.chunkSize)
	if err != nil {
		// only possible if the handler closed the writer itself
		e.logger.Error("unable to obtain buffered response", zap.Error(err))
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Header:     make(http.Header),
			Body:       frame.Empty(),
		}
	}

	return &Response{
		StatusCode: code,
		Header:     header,
		Body:       body,
	}
}

func (e *Endpoint) serveStream(r *http.Request) *Response {
	reader, writer := io.Pipe()
	sw := newStreamWriter(writer)

	go func() {
		defer func() {
			sw.WriteHeader(http.StatusOK)
			writer.Close()
		}()

		e.handler.ServeHTTP(sw, r)
	}()

	<-sw.ready
	return &Response{
		StatusCode: sw.code,
		Header:     sw.sent,
		Body:       frame.FromReader(reader, e.chunkSize),
	}
}
