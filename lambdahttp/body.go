// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lambdahttp

import (
	"errors"
	"fmt"
	"io"

	"github.com/xmidt-org/lambdabridge/frame"
)

// bodyReader presents the data frames of a frame.Body as an io.ReadCloser.  At most one
// frame is held at a time.  Trailers frames are skipped.
type bodyReader struct {
	source  frame.Body
	index   int
	pending []byte
	err     error
}

// advance pulls frames until a nonempty data frame arrives or the source is finished.
func (br *bodyReader) advance() {
	for br.err == nil && len(br.pending) == 0 {
		f, err := br.source.Next()
		switch {
		case errors.Is(err, io.EOF):
			br.err = io.EOF
		case err != nil:
			br.err = fmt.Errorf("frame %d: %w", br.index, err)
		default:
			if verr := f.Validate(); verr != nil {
				br.err = fmt.Errorf("frame %d: %w", br.index, verr)
			} else if f.IsData() {
				br.pending = f.Data()
			}
		}

		br.index++
	}
}

func (br *bodyReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	br.advance()
	if len(br.pending) == 0 {
		return 0, br.err
	}

	n := copy(p, br.pending)
	br.pending = br.pending[n:]
	return n, nil
}

func (br *bodyReader) Close() error {
	return br.source.Close()
}

// NewBody adapts a frame.Body into the io.ReadCloser used as a streaming response body.
// The first data frame is fetched immediately, so a source that is malformed from the start
// produces an error here and is closed.  Later failures are returned from Read, never
// reported as a premature io.EOF.
func NewBody(source frame.Body) (io.ReadCloser, error) {
	br := &bodyReader{source: source}
	br.advance()
	if br.err != nil && !errors.Is(br.err, io.EOF) {
		source.Close()
		return nil, br.err
	}

	return br, nil
}
