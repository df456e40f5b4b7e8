// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lambdahttp

import (
	"net/http"
	"net/textproto"
	"strings"
)

const (
	cookieHeader    = "Cookie"
	setCookieHeader = "Set-Cookie"
)

// FlattenHeader converts an http.Header into the single-valued form Lambda uses.  Names are
// lowercased and multiple values are joined with commas.  Set-Cookie values cannot be joined,
// so they are returned separately in the order they appear.
func FlattenHeader(h http.Header) (map[string]string, []string) {
	var (
		flattened = make(map[string]string, len(h))
		cookies   []string
	)

	for name, values := range h {
		if len(values) == 0 {
			continue
		}

		if textproto.CanonicalMIMEHeaderKey(name) == setCookieHeader {
			cookies = append(cookies, values...)
			continue
		}

		flattened[strings.ToLower(name)] = strings.Join(values, ",")
	}

	return flattened, cookies
}

// ExpandHeader is the inverse of FlattenHeader.  Names are canonicalized, and each cookie
// becomes its own Set-Cookie value.  Comma-joined values are left intact.
func ExpandHeader(flattened map[string]string, cookies []string) http.Header {
	h := make(http.Header, len(flattened)+1)
	for name, value := range flattened {
		h[textproto.CanonicalMIMEHeaderKey(name)] = []string{value}
	}

	if len(cookies) > 0 {
		h[setCookieHeader] = append([]string(nil), cookies...)
	}

	return h
}
