// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// DefaultChunkSize is the size of data frames produced by FromReader when no
// positive chunk size is supplied.
const DefaultChunkSize = 32 * 1024

// ErrBodyClosed is returned by Next once a body has been closed.
var ErrBodyClosed = errors.New("body has been closed")

// Body is a finite, ordered, single-pass sequence of frames.  Next returns io.EOF
// once the sequence is exhausted.  Implementations are not required to be safe for
// concurrent use, although Close may be called concurrently with Next.
type Body interface {
	Next() (Frame, error)
	Close() error
}

type emptyBody struct{}

func (emptyBody) Next() (Frame, error) { return Frame{}, io.EOF }
func (emptyBody) Close() error         { return nil }

// Empty returns a Body with no frames.
func Empty() Body {
	return emptyBody{}
}

// sliceBody hands out a fixed set of frames in order
type sliceBody struct {
	closed uint32
	frames []Frame
}

func (sb *sliceBody) Next() (Frame, error) {
	if atomic.LoadUint32(&sb.closed) == 1 {
		return Frame{}, ErrBodyClosed
	}

	if len(sb.frames) == 0 {
		return Frame{}, io.EOF
	}

	f := sb.frames[0]
	sb.frames[0] = Frame{}
	sb.frames = sb.frames[1:]
	return f, nil
}

func (sb *sliceBody) Close() error {
	atomic.StoreUint32(&sb.closed, 1)
	return nil
}

// FromFrames returns a Body that yields the given frames, in order, without validating them.
func FromFrames(frames ...Frame) Body {
	copied := make([]Frame, len(frames))
	copy(copied, frames)
	return &sliceBody{frames: copied}
}

// FromBytes returns a Body with one data frame per nonempty chunk.
func FromBytes(chunks ...[]byte) Body {
	frames := make([]Frame, 0, len(chunks))
	for _, c := range chunks {
		if len(c) > 0 {
			frames = append(frames, Data(c))
		}
	}

	return &sliceBody{frames: frames}
}

// readerBody pulls data frames of at most chunkSize bytes from an io.ReadCloser
type readerBody struct {
	source    io.ReadCloser
	chunkSize int
	done      bool
}

func (rb *readerBody) Next() (Frame, error) {
	if rb.done {
		return Frame{}, io.EOF
	}

	buffer := make([]byte, rb.chunkSize)
	for {
		n, err := rb.source.Read(buffer)
		if n > 0 {
			// a terminal error, if any, is reported on the next call
			if err != nil {
				rb.done = errors.Is(err, io.EOF)
			}

			return Data(buffer[:n]), nil
		}

		if errors.Is(err, io.EOF) {
			rb.done = true
			return Frame{}, io.EOF
		} else if err != nil {
			return Frame{}, err
		}
	}
}

func (rb *readerBody) Close() error {
	return rb.source.Close()
}

// FromReader returns a Body that reads data frames lazily from the given source.
// If chunkSize is nonpositive, DefaultChunkSize is used.
func FromReader(source io.ReadCloser, chunkSize int) Body {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	return &readerBody{source: source, chunkSize: chunkSize}
}

// Collect drains the given Body, concatenating all data frames and merging any trailers.
// The body is always closed.  The first malformed frame or read error aborts the collection.
func Collect(b Body) ([]byte, http.Header, error) {
	defer b.Close()

	var (
		data     bytes.Buffer
		trailers http.Header
	)

	for index := 0; ; index++ {
		f, err := b.Next()
		if errors.Is(err, io.EOF) {
			return data.Bytes(), trailers, nil
		} else if err != nil {
			return nil, nil, err
		}

		if err := f.Validate(); err != nil {
			return nil, nil, fmt.Errorf("frame %d: %w", index, err)
		}

		if f.IsData() {
			data.Write(f.Data())
			continue
		}

		if trailers == nil {
			trailers = make(http.Header, len(f.Trailers()))
		}

		for name, values := range f.Trailers() {
			trailers[http.CanonicalHeaderKey(name)] = append(trailers[http.CanonicalHeaderKey(name)], values...)
		}
	}
}
