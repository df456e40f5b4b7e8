// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolModeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("BIDI_STREAM", BidiStream.String())
	assert.Equal("REQUEST_RESPONSE", RequestResponse.String())
	assert.Equal("ProtocolMode(42)", ProtocolMode(42).String())
}

func TestParseProtocolMode(t *testing.T) {
	var (
		assert   = assert.New(t)
		testData = []struct {
			value       string
			expected    ProtocolMode
			expectError bool
		}{
			{"BIDI_STREAM", BidiStream, false},
			{"bidi-stream", BidiStream, false},
			{"REQUEST_RESPONSE", RequestResponse, false},
			{" request_response ", RequestResponse, false},
			{"Request-Response", RequestResponse, false},
			{"", BidiStream, true},
			{"streaming", BidiStream, true},
		}
	)

	for _, record := range testData {
		t.Logf("%#v", record)
		actual, err := ParseProtocolMode(record.value)
		assert.Equal(record.expected, actual)
		assert.Equal(record.expectError, err != nil)
	}
}

func TestHandleOptionsZeroValue(t *testing.T) {
	assert.Equal(t, BidiStream, HandleOptions{}.ProtocolMode)
}

func TestContext(t *testing.T) {
	assert := assert.New(t)

	_, ok := GetProtocolMode(context.Background())
	assert.False(ok)
	assert.Empty(GetInvocationID(context.Background()))

	ctx := withInvocationID(withProtocolMode(context.Background(), RequestResponse), "abc")
	pm, ok := GetProtocolMode(ctx)
	assert.True(ok)
	assert.Equal(RequestResponse, pm)
	assert.Equal("abc", GetInvocationID(ctx))
}
