// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"context"
	"net/http"
)

type protocolModeKey struct{}

type invocationIDKey struct{}

func withProtocolMode(ctx context.Context, pm ProtocolMode) context.Context {
	return context.WithValue(ctx, protocolModeKey{}, pm)
}

// GetProtocolMode returns the protocol mode of the call that produced the given context.
// The second return value is false when the context did not come from HandleWithOptions.
func GetProtocolMode(ctx context.Context) (ProtocolMode, bool) {
	pm, ok := ctx.Value(protocolModeKey{}).(ProtocolMode)
	return pm, ok
}

func withInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// GetInvocationID returns the invocation id assigned to the current call, or the empty string.
func GetInvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey{}).(string)
	return id
}

type contentTypeKey struct{}

// populateContentType is a go-kit ServerBefore that records the request's Content-Type.
func populateContentType(ctx context.Context, request *http.Request) context.Context {
	return context.WithValue(ctx, contentTypeKey{}, request.Header.Get("Content-Type"))
}

func getContentType(ctx context.Context) string {
	ct, _ := ctx.Value(contentTypeKey{}).(string)
	return ct
}
