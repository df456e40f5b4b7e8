// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lambdahttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/xmidt-org/lambdabridge/xhttp"
)

const (
	// EventVersion is the payload format version of function URL events.
	EventVersion = "2.0"

	defaultScheme = "https"
)

var (
	// ErrInvalidBody indicates a function URL event whose body could not be decoded.
	ErrInvalidBody = errors.New("invalid event body")

	// ErrInvalidPath indicates a function URL event whose path could not be parsed.
	ErrInvalidPath = errors.New("invalid event path")
)

// NewRequest produces the *http.Request described by a function URL event.  The request body
// can be replayed through GetBody.  The returned request is bound to ctx.
func NewRequest(ctx context.Context, event events.LambdaFunctionURLRequest) (*http.Request, error) {
	content, err := decodeBody(event.Body, event.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	path := event.RawPath
	if len(path) == 0 {
		path = event.RequestContext.HTTP.Path
	}

	if len(path) == 0 {
		path = "/"
	}

	target, err := url.ParseRequestURI(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	target.Scheme = defaultScheme
	target.Host = event.RequestContext.DomainName
	target.RawQuery = event.RawQueryString

	method := event.RequestContext.HTTP.Method
	if len(method) == 0 {
		method = http.MethodGet
	}

	request, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	for name, value := range event.Headers {
		request.Header[textproto.CanonicalMIMEHeaderKey(name)] = []string{value}
	}

	if len(event.Cookies) > 0 {
		request.Header.Set(cookieHeader, strings.Join(event.Cookies, "; "))
	}

	if host := request.Header.Get("Host"); len(host) > 0 {
		request.Host = host
		request.Header.Del("Host")
	}

	if proto := event.RequestContext.HTTP.Protocol; len(proto) > 0 {
		if major, minor, ok := http.ParseHTTPVersion(proto); ok {
			request.Proto, request.ProtoMajor, request.ProtoMinor = proto, major, minor
		}
	}

	request.RemoteAddr = event.RequestContext.HTTP.SourceIP
	request.RequestURI = target.RequestURI()
	if len(content) > 0 {
		request.Body, request.GetBody = xhttp.NewRewindBytes(content)
		request.ContentLength = int64(len(content))
	} else {
		request.Body = http.NoBody
	}

	return request, nil
}

// NewEvent produces the function URL event that describes an *http.Request.  This is the
// inverse of NewRequest, and is what clients use to invoke a function directly.  The request
// body, if any, is consumed.
func NewEvent(request *http.Request) (events.LambdaFunctionURLRequest, error) {
	var content []byte
	if request.Body != nil {
		var err error
		if content, err = io.ReadAll(request.Body); err != nil {
			return events.LambdaFunctionURLRequest{}, err
		}
	}

	header := request.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	var cookies []string
	for _, line := range header.Values(cookieHeader) {
		for _, c := range strings.Split(line, ";") {
			if c = strings.TrimSpace(c); len(c) > 0 {
				cookies = append(cookies, c)
			}
		}
	}

	header.Del(cookieHeader)
	flattened, _ := FlattenHeader(header)

	host := request.Host
	if len(host) == 0 {
		host = request.URL.Host
	}

	if len(host) > 0 {
		flattened["host"] = host
	}

	var query map[string]string
	if values := request.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for name, v := range values {
			query[name] = strings.Join(v, ",")
		}
	}

	body, isBase64Encoded := encodeBody(header.Get("Content-Type"), content)
	return events.LambdaFunctionURLRequest{
		Version:               EventVersion,
		RawPath:               request.URL.EscapedPath(),
		RawQueryString:        request.URL.RawQuery,
		Cookies:               cookies,
		Headers:               flattened,
		QueryStringParameters: query,
		RequestContext: events.LambdaFunctionURLRequestContext{
			DomainName: host,
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{
				Method:   request.Method,
				Path:     request.URL.Path,
				Protocol: request.Proto,
			},
		},
		Body:            body,
		IsBase64Encoded: isBase64Encoded,
	}, nil
}
