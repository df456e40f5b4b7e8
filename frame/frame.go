// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"errors"
	"net/http"
)

// ErrMalformed indicates a frame that is neither a data frame nor a trailers frame.
// The zero value of Frame is malformed.
var ErrMalformed = errors.New("malformed frame")

type kind uint8

const (
	kindNone kind = iota
	kindData
	kindTrailers
)

// Frame is a single element of a Body.
type Frame struct {
	kind     kind
	data     []byte
	trailers http.Header
}

// Data produces a data frame.  The slice is not copied.
func Data(p []byte) Frame {
	return Frame{kind: kindData, data: p}
}

// Trailers produces a trailers frame.
func Trailers(h http.Header) Frame {
	return Frame{kind: kindTrailers, trailers: h}
}

func (f Frame) IsData() bool {
	return f.kind == kindData
}

func (f Frame) IsTrailers() bool {
	return f.kind == kindTrailers
}

// Data returns the bytes of a data frame, or nil for any other frame.
func (f Frame) Data() []byte {
	if f.kind == kindData {
		return f.data
	}

	return nil
}

// Trailers returns the trailers of a trailers frame, or nil for any other frame.
func (f Frame) Trailers() http.Header {
	if f.kind == kindTrailers {
		return f.trailers
	}

	return nil
}

// Validate returns ErrMalformed if this frame is neither data nor trailers.
func (f Frame) Validate() error {
	if f.kind == kindData || f.kind == kindTrailers {
		return nil
	}

	return ErrMalformed
}
