// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lambdahttp

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
)

// NewStreamingResponse produces a streaming function URL response.  The body is handed to the
// Lambda runtime as is and read incrementally.
func NewStreamingResponse(code int, header http.Header, body io.Reader) *events.LambdaFunctionURLStreamingResponse {
	flattened, cookies := FlattenHeader(header)
	return &events.LambdaFunctionURLStreamingResponse{
		StatusCode: code,
		Headers:    flattened,
		Body:       body,
		Cookies:    cookies,
	}
}

// NewBufferedResponse produces a buffered function URL response.  Binary content, as decided
// by IsBinary, is base64 encoded.
func NewBufferedResponse(code int, header http.Header, content []byte) events.LambdaFunctionURLResponse {
	flattened, cookies := FlattenHeader(header)
	body, isBase64Encoded := encodeBody(header.Get("Content-Type"), content)
	return events.LambdaFunctionURLResponse{
		StatusCode:      code,
		Headers:         flattened,
		Body:            body,
		IsBase64Encoded: isBase64Encoded,
		Cookies:         cookies,
	}
}

// NewHTTPResponse converts a buffered function URL response into a client-side *http.Response.
func NewHTTPResponse(event events.LambdaFunctionURLResponse) (*http.Response, error) {
	content, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	code := event.StatusCode
	if code == 0 {
		code = http.StatusOK
	}

	return &http.Response{
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        ExpandHeader(event.Headers, event.Cookies),
		Body:          io.NopCloser(bytes.NewReader(content)),
		ContentLength: int64(len(content)),
	}, nil
}
