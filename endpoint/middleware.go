// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// InvocationIDHeader carries the invocation id on both requests and responses.
const InvocationIDHeader = "X-Invocation-Id"

// identify assigns an invocation id, keeping any id the caller supplied.
func (e *Endpoint) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		id := request.Header.Get(InvocationIDHeader)
		if len(id) == 0 {
			id = ksuid.New().String()
		}

		response.Header().Set(InvocationIDHeader, id)
		next.ServeHTTP(response, request.WithContext(withInvocationID(request.Context(), id)))
	})
}

// enrich places a request-scoped logger into the context
func (e *Endpoint) enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		pm, _ := GetProtocolMode(ctx)
		logger := e.logger.With(
			zap.String("invocationID", GetInvocationID(ctx)),
			zap.String("method", request.Method),
			zap.String("path", request.URL.Path),
			zap.Stringer("protocolMode", pm),
		)

		next.ServeHTTP(response, request.WithContext(sallust.With(ctx, logger)))
	})
}

// statusWriter remembers the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.code == 0 {
		sw.code = code
	}

	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(p []byte) (int, error) {
	if sw.code == 0 {
		sw.code = http.StatusOK
	}

	return sw.ResponseWriter.Write(p)
}

// instrument records metrics and a completion log entry for each handler invocation.
func (e *Endpoint) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		var (
			vars    = mux.Vars(request)
			service = vars["service"]
			handler = vars["handler"]
			writer  = &statusWriter{ResponseWriter: response}
			start   = e.now()
		)

		next.ServeHTTP(writer, request)
		if writer.code == 0 {
			writer.code = http.StatusOK
		}

		elapsed := e.since(start)
		e.metrics.Invocations.With(ServiceLabel, service, HandlerLabel, handler, CodeLabel, strconv.Itoa(writer.code)).Add(1.0)
		e.metrics.Duration.With(ServiceLabel, service, HandlerLabel, handler).Observe(elapsed.Seconds())

		sallust.Get(request.Context()).Debug(
			"invocation complete",
			zap.String("service", service),
			zap.String("handler", handler),
			zap.Int("code", writer.code),
			zap.Duration("elapsed", elapsed),
		)
	})
}
