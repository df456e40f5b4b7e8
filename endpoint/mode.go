// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"fmt"
	"strings"
)

// ProtocolMode selects how request and response data flow between a caller and an Endpoint.
type ProtocolMode int

const (
	// BidiStream lets the handler stream its response while the request is still in flight.
	// This is the zero value.
	BidiStream ProtocolMode = iota

	// RequestResponse reads the whole request before invoking a handler, and fully
	// produces the response before any of it is handed back.
	RequestResponse
)

func (pm ProtocolMode) String() string {
	switch pm {
	case BidiStream:
		return "BIDI_STREAM"
	case RequestResponse:
		return "REQUEST_RESPONSE"
	default:
		return fmt.Sprintf("ProtocolMode(%d)", int(pm))
	}
}

// ParseProtocolMode is the inverse of String.  Matching ignores case, and dashes are
// treated as underscores.
func ParseProtocolMode(v string) (ProtocolMode, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(v), "-", "_")) {
	case "BIDI_STREAM":
		return BidiStream, nil
	case "REQUEST_RESPONSE":
		return RequestResponse, nil
	default:
		return BidiStream, fmt.Errorf("invalid protocol mode: %q", v)
	}
}

// HandleOptions carries the per-call settings for HandleWithOptions.
type HandleOptions struct {
	ProtocolMode ProtocolMode
}
