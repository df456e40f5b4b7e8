// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/xmidt-org/lambdabridge/endpoint"
	"github.com/xmidt-org/lambdabridge/frame"
	"github.com/xmidt-org/lambdabridge/lambdahttp"
)

// ErrNoResponse is returned when the endpoint produces no response at all.
var ErrNoResponse = errors.New("endpoint produced no response")

// Handler forwards Lambda function URL invocations to an endpoint.  A Handler holds no
// state other than its endpoint, and is safe for concurrent use whenever the endpoint is.
type Handler struct {
	endpoint endpoint.Interface
}

// New creates a Handler backed by the given endpoint.  No validation is done.
func New(e endpoint.Interface) Handler {
	return Handler{endpoint: e}
}

func (h Handler) options() endpoint.HandleOptions {
	return endpoint.HandleOptions{
		ProtocolMode: endpoint.RequestResponse,
	}
}

// forward invokes the endpoint.  A nil endpoint behaves as one with no services, and a
// nil Body is treated as an empty one.
func (h Handler) forward(r *http.Request) (*endpoint.Response, error) {
	e := h.endpoint
	if e == nil {
		e = new(endpoint.Endpoint)
	}

	response := e.HandleWithOptions(r, h.options())
	if response == nil {
		return nil, ErrNoResponse
	}

	if response.Body == nil {
		copied := *response
		copied.Body = frame.Empty()
		response = &copied
	}

	return response, nil
}

// Handle processes a function URL invocation for a function configured with the
// RESPONSE_STREAM invoke mode.  The endpoint's status code and headers are returned
// unchanged, and its body frames are read one at a time as the runtime consumes the
// response body.
//
// An error is returned if the request event cannot be decoded or if the response body
// is malformed from its first frame.  A frame that turns out to be malformed later on
// fails the runtime's read of the response body.
func (h Handler) Handle(ctx context.Context, request events.LambdaFunctionURLRequest) (*events.LambdaFunctionURLStreamingResponse, error) {
	r, err := lambdahttp.NewRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	response, err := h.forward(r)
	if err != nil {
		return nil, err
	}

	body, err := lambdahttp.NewBody(response.Body)
	if err != nil {
		return nil, err
	}

	return lambdahttp.NewStreamingResponse(response.StatusCode, response.Header, body), nil
}

// HandleBuffered processes a function URL invocation for a function configured with the
// BUFFERED invoke mode.  The whole response body is collected first, since that is what the
// runtime requires.  Trailers are discarded.
func (h Handler) HandleBuffered(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	r, err := lambdahttp.NewRequest(ctx, request)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}

	response, err := h.forward(r)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}

	content, _, err := frame.Collect(response.Body)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}

	return lambdahttp.NewBufferedResponse(response.StatusCode, response.Header, content), nil
}
