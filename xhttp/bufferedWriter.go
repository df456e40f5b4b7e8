// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/xmidt-org/lambdabridge/frame"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrBufferedWriterClosed = errors.New("BufferedWriter has been closed")

// BufferedWriter is a closeable http.ResponseWriter that holds all written response information in memory.
// The zero value of this type is a fully usable writer.
//
// The http.ResponseWriter methods of this type are not safe for concurrent execution.  However, it is safe
// to invoke Close concurrently with the other methods.
//
// Once closed, future Write and Result calls will return errors.  This type is what a request/response
// invocation uses to capture an http.Handler's output before handing it off as a sequence of frames.
type BufferedWriter struct {
	closed      uint32
	wroteHeader bool
	code        int
	header      http.Header
	buffer      bytes.Buffer
}

// Close closes this writer.  Once closed, this writer will reject writes with an error.
// This method is idempotent, and will return an error if called more than once on a given writer instance.
func (bw *BufferedWriter) Close() error {
	if atomic.CompareAndSwapUint32(&bw.closed, 0, 1) {
		return nil
	}

	return ErrBufferedWriterClosed
}

// Header returns the HTTP header to write to the response.  This method is unaffected by the close state.
func (bw *BufferedWriter) Header() http.Header {
	if bw.header == nil {
		bw.header = make(http.Header)
	}

	return bw.header
}

// Write buffers content.  If this writer is closed, this method returns a count of 0 with an error.
func (bw *BufferedWriter) Write(p []byte) (int, error) {
	if atomic.LoadUint32(&bw.closed) == 1 {
		return 0, ErrBufferedWriterClosed
	}

	if !bw.wroteHeader {
		bw.writeHeader(http.StatusOK)
	}

	return bw.buffer.Write(p)
}

// WriteHeader sets a status code and in most other ways behaves as the standard net/http ResponseWriter.
// This method is idempotent.  Only the first invocation will have an effect.  If this writer is closed, this
// method has no effect.
func (bw *BufferedWriter) WriteHeader(code int) {
	// mimic the current behavior of the stdlib
	if code < 100 || code > 999 {
		panic(fmt.Sprintf("Invalid WriteHeader code %v", code))
	}

	if atomic.LoadUint32(&bw.closed) == 1 || bw.wroteHeader {
		return
	}

	bw.writeHeader(code)
}

func (bw *BufferedWriter) writeHeader(code int) {
	bw.wroteHeader = true
	bw.code = code
}

// Result closes this writer and hands off its state: the status code, a copy of the header with
// canonicalized names, and the buffered content split into data frames of at most chunkSize bytes.
// A nonpositive chunkSize produces a single data frame.  A Content-Length header is set whenever
// content was written.
//
// This method only takes effect once.  Subsequent calls, or calls after Close, return ErrBufferedWriterClosed.
func (bw *BufferedWriter) Result(chunkSize int) (int, http.Header, frame.Body, error) {
	if !atomic.CompareAndSwapUint32(&bw.closed, 0, 1) {
		return 0, nil, nil, ErrBufferedWriterClosed
	}

	header := make(http.Header, len(bw.header)+1)
	// names that canonicalize alike are merged in lexical order
	names := maps.Keys(bw.header)
	slices.Sort(names)
	for _, name := range names {
		ck := http.CanonicalHeaderKey(name)
		header[ck] = append(header[ck], bw.header[name]...)
	}

	contentLength := bw.buffer.Len()
	if contentLength > 0 {
		header.Set("Content-Length", strconv.Itoa(contentLength))
	}

	code := bw.code
	if code < 100 {
		code = http.StatusOK
	}

	content := bw.buffer.Bytes()
	if chunkSize < 1 || chunkSize >= len(content) {
		return code, header, frame.FromBytes(content), nil
	}

	chunks := make([][]byte, 0, len(content)/chunkSize+1)
	for len(content) > chunkSize {
		chunks = append(chunks, content[:chunkSize])
		content = content[chunkSize:]
	}

	chunks = append(chunks, content)
	return code, header, frame.FromBytes(chunks...), nil
}
