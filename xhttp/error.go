// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an HTTP-specific carrier of error information.  In addition to implementing error,
// this type also implements go-kit's StatusCoder and Headerer.  The json.Marshaler interface
// is implemented so that the default go-kit error encoder will always emit a JSON message.
type Error struct {
	Code   int
	Header http.Header
	Text   string
}

// NewError produces an *Error with a printf-style message.
func NewError(code int, format string, parameters ...interface{}) *Error {
	return &Error{
		Code: code,
		Text: fmt.Sprintf(format, parameters...),
	}
}

func (e *Error) StatusCode() int {
	return e.Code
}

func (e *Error) Headers() http.Header {
	return e.Header
}

func (e *Error) Error() string {
	return e.Text
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"code": %d, "text": %s}`, e.Code, jsonString(e.Text))), nil
}

// jsonString produces a JSON string literal.  Invalid UTF-8 is replaced with U+FFFD.
func jsonString(v string) []byte {
	// marshaling a string cannot fail
	b, _ := json.Marshal(v)
	return b
}

// WriteErrorf provides printf-style functionality for writing out the results of some operation.
// The response status code is set to code, and a JSON message of the form {"code": %d, "message": "%s"} is
// written as the response body.
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) (int, error) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)

	return fmt.Fprintf(
		response,
		`{"code": %d, "message": %s}`,
		code,
		jsonString(fmt.Sprintf(format, parameters...)),
	)
}
