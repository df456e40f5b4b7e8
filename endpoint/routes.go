// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/lambdabridge/xhttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DiscoverPath = "/discover"
	HealthPath   = "/health"
	InvokePath   = "/invoke/{service}/{handler}"

	// DefaultContentType is used for handler output when the request carries no Content-Type.
	DefaultContentType = "application/octet-stream"
)

func (e *Endpoint) newRouter() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		xhttp.WriteErrorf(response, http.StatusNotFound, "no route for %s", request.URL.Path)
	})

	router.MethodNotAllowedHandler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		xhttp.WriteErrorf(response, http.StatusMethodNotAllowed, "method %s not allowed for %s", request.Method, request.URL.Path)
	})

	router.Handle(DiscoverPath, http.HandlerFunc(e.discover)).Methods(http.MethodGet)
	router.Handle(HealthPath, http.HandlerFunc(health)).Methods(http.MethodGet)
	router.Handle(
		InvokePath,
		alice.New(e.instrument).Then(
			kithttp.NewServer(
				e.invoke,
				decodeInvocation,
				encodeInvocationOutput,
				kithttp.ServerBefore(kithttp.PopulateRequestContext, populateContentType),
				kithttp.ServerErrorHandler(transport.ErrorHandlerFunc(logInvocationError)),
			),
		),
	).Methods(http.MethodPost)

	return alice.New(e.identify, e.enrich).Then(router)
}

func health(response http.ResponseWriter, _ *http.Request) {
	response.WriteHeader(http.StatusOK)
}

func (e *Endpoint) discover(response http.ResponseWriter, request *http.Request) {
	m := e.manifest
	pm, _ := GetProtocolMode(request.Context())
	m.ProtocolMode = pm.String()

	response.Header().Set("Content-Type", "application/json")
	if err := EncodeManifest(response, m); err != nil {
		sallust.Get(request.Context()).Error("unable to encode manifest", zap.Error(err))
	}
}

// invoke is the go-kit endpoint behind the invoke route.  Handler errors are returned
// unchanged, so any StatusCoder or Headerer they implement is honored by the error encoder.
func (e *Endpoint) invoke(ctx context.Context, value interface{}) (interface{}, error) {
	inv := value.(*Invocation)
	s, ok := e.services[inv.Service]
	if !ok {
		return nil, xhttp.NewError(http.StatusNotFound, "no such service: %s", inv.Service)
	}

	h, ok := s.Handlers[inv.Handler]
	if !ok {
		return nil, xhttp.NewError(http.StatusNotFound, "no such handler: %s/%s", inv.Service, inv.Handler)
	}

	return h(ctx, inv)
}

func decodeInvocation(ctx context.Context, request *http.Request) (interface{}, error) {
	input, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, xhttp.NewError(http.StatusBadRequest, "unable to read invocation input: %s", err)
	}

	vars := mux.Vars(request)
	return &Invocation{
		ID:      GetInvocationID(ctx),
		Service: vars["service"],
		Handler: vars["handler"],
		Header:  request.Header,
		Input:   input,
	}, nil
}

// encodeInvocationOutput writes handler output.  The output inherits the request's
// Content-Type, which populateContentType places in the context.
func encodeInvocationOutput(ctx context.Context, response http.ResponseWriter, value interface{}) error {
	var output []byte
	switch v := value.(type) {
	case nil:
	case []byte:
		output = v
	case string:
		output = []byte(v)
	default:
		return fmt.Errorf("unsupported handler output type %T", value)
	}

	contentType := getContentType(ctx)
	if len(contentType) == 0 {
		contentType = DefaultContentType
	}

	response.Header().Set("Content-Type", contentType)
	response.WriteHeader(http.StatusOK)
	_, err := response.Write(output)
	return err
}

func logInvocationError(ctx context.Context, err error) {
	sallust.Get(ctx).Error("invocation failed", zap.Error(err))
}
