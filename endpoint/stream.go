// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"fmt"
	"io"
	"net/http"
	"sync"
)

// streamWriter is the http.ResponseWriter used for BidiStream calls.  The status code and
// a snapshot of the header become visible through ready once the handler commits the
// response.  Content goes through a pipe to whoever consumes the response body.
type streamWriter struct {
	header http.Header
	pipe   *io.PipeWriter

	once  sync.Once
	ready chan struct{}
	code  int
	sent  http.Header
}

func newStreamWriter(pipe *io.PipeWriter) *streamWriter {
	return &streamWriter{
		header: make(http.Header),
		pipe:   pipe,
		ready:  make(chan struct{}),
	}
}

func (sw *streamWriter) Header() http.Header {
	return sw.header
}

func (sw *streamWriter) WriteHeader(code int) {
	if code < 100 || code > 999 {
		panic(fmt.Sprintf("Invalid WriteHeader code %v", code))
	}

	sw.once.Do(func() {
		sw.code = code
		sw.sent = sw.header.Clone()
		close(sw.ready)
	})
}

// Write blocks until the response body consumer reads the content.
func (sw *streamWriter) Write(p []byte) (int, error) {
	sw.WriteHeader(http.StatusOK)
	return sw.pipe.Write(p)
}

// Flush is a nop, since every Write is already handed directly to the consumer.
func (sw *streamWriter) Flush() {}
