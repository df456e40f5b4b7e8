// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"bytes"
	"io"
)

type readSeekNopCloser struct {
	io.ReadSeeker
}

func (readSeekNopCloser) Close() error {
	return nil
}

// NewRewindBytes produces both an io.ReadCloser that returns the given bytes
// and a function that rewinds that same reader to the start.  Both return values
// are appropriate for http.Request.Body and http.Request.GetBody, respectively.
//
// Host runtimes that deliver the whole request body at once can use this to make
// every request replayable without copying the content.
func NewRewindBytes(b []byte) (io.ReadCloser, func() (io.ReadCloser, error)) {
	rsc := readSeekNopCloser{bytes.NewReader(b)}
	return rsc,
		func() (io.ReadCloser, error) {
			_, err := rsc.Seek(0, io.SeekStart)
			return rsc, err
		}
}
