// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/lambdabridge/config"
	"github.com/xmidt-org/lambdabridge/endpoint"
	"github.com/xmidt-org/lambdabridge/handler"
	"go.uber.org/zap/zaptest"
)

func TestEcho(t *testing.T) {
	output, err := echo(context.Background(), &endpoint.Invocation{Input: []byte("ping")})
	assert.NoError(t, err)
	assert.Equal(t, []byte("ping"), output)
}

func TestReverse(t *testing.T) {
	for _, record := range []struct {
		name     string
		input    []byte
		expected interface{}
	}{
		{name: "Empty", input: []byte{}, expected: ""},
		{name: "ASCII", input: []byte("ping"), expected: "gnip"},
		{name: "Unicode", input: []byte("héllo"), expected: "olléh"},
		{name: "Binary", input: []byte{0xff, 0x00, 0xfe}, expected: []byte{0xfe, 0x00, 0xff}},
	} {
		t.Run(record.name, func(t *testing.T) {
			output, err := reverse(context.Background(), &endpoint.Invocation{Input: record.input})
			assert.NoError(t, err)
			assert.Equal(t, record.expected, output)
		})
	}
}

func testConfig(invokeMode string) config.Config {
	return config.Config{
		Endpoint: config.Endpoint{ChunkSize: 2},
		Lambda:   config.Lambda{InvokeMode: invokeMode},
	}
}

func TestProvideEndpoint(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		e = provideEndpoint(EndpointIn{
			Config:  testConfig(config.InvokeModeBuffered),
			Logger:  zaptest.NewLogger(t),
			Metrics: endpoint.DiscardMetrics(),
		})

		h = handler.New(e)
	)

	response, err := h.HandleBuffered(context.Background(), events.LambdaFunctionURLRequest{
		RawPath: "/invoke/echo/reverse",
		Headers: map[string]string{"content-type": "text/plain"},
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{Method: "POST"},
		},
		Body: "ping",
	})

	require.NoError(err)
	assert.Equal(200, response.StatusCode)
	assert.Equal("gnip", response.Body)
	assert.False(response.IsBase64Encoded)
}

func TestNewLambdaHandler(t *testing.T) {
	h := handler.New(endpoint.NewBuilder().Build())

	t.Run("Stream", func(t *testing.T) {
		_, ok := newLambdaHandler(testConfig(config.InvokeModeStream), h).(func(context.Context, events.LambdaFunctionURLRequest) (*events.LambdaFunctionURLStreamingResponse, error))
		assert.True(t, ok)
	})

	t.Run("Buffered", func(t *testing.T) {
		_, ok := newLambdaHandler(testConfig(config.InvokeModeBuffered), h).(func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error))
		assert.True(t, ok)
	})
}
