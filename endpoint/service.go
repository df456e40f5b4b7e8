// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"net/http"

	kitendpoint "github.com/go-kit/kit/endpoint"
)

// Service is a named set of handlers.  Each handler is a go-kit endpoint that receives
// an *Invocation and returns the output as either a []byte or a string.  A nil output
// produces an empty response body.
type Service struct {
	Name     string
	Handlers map[string]kitendpoint.Endpoint
}

// Invocation is the request value passed to bound handlers.
type Invocation struct {
	// ID is the invocation id, either supplied by the caller or generated.
	ID string

	Service string
	Handler string

	// Header is the original request header.
	Header http.Header

	// Input is the complete request body.
	Input []byte
}
