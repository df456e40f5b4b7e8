// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/lambdabridge/lambdahttp"
	"go.uber.org/zap/zaptest"
)

func encodePayload(t *testing.T, v interface{}) []byte {
	var payload []byte
	require.NoError(t, codec.NewEncoderBytes(&payload, payloadHandle).Encode(v))
	return payload
}

func decodeEvent(payload []byte) (event events.LambdaFunctionURLRequest, err error) {
	err = codec.NewDecoderBytes(payload, payloadHandle).Decode(&event)
	return
}

func TestNew(t *testing.T) {
	t.Run("NoFunctionName", func(t *testing.T) {
		assert := assert.New(t)
		i, err := New(new(mockLambda), Options{})
		assert.Nil(i)
		assert.ErrorIs(err, ErrNoFunctionName)
	})

	t.Run("DefaultLogger", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		i, err := New(new(mockLambda), Options{FunctionName: "echo"})
		require.NoError(err)
		require.NotNil(i)
		assert.NotNil(i.logger)
		assert.Equal("echo", i.functionName)
	})
}

func testDoSuccess(t *testing.T, qualifier string) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		client = new(mockLambda)
		ctx    = context.Background()
	)

	i, err := New(client, Options{
		FunctionName: "echo",
		Qualifier:    qualifier,
		Logger:       zaptest.NewLogger(t),
	})
	require.NoError(err)

	client.On("InvokeWithContext", ctx, mock.MatchedBy(func(input *lambda.InvokeInput) bool {
		event, err := decodeEvent(input.Payload)
		return err == nil &&
			aws.StringValue(input.FunctionName) == "echo" &&
			aws.StringValue(input.InvocationType) == lambda.InvocationTypeRequestResponse &&
			aws.StringValue(input.Qualifier) == qualifier &&
			event.RawPath == "/invoke/echo/reverse" &&
			event.RequestContext.HTTP.Method == "POST" &&
			event.Body == "ping"
	})).Return(
		&lambda.InvokeOutput{
			StatusCode: aws.Int64(200),
			Payload: encodePayload(t, lambdahttp.NewBufferedResponse(
				200,
				map[string][]string{"Content-Type": {"text/plain"}},
				[]byte("gnip"),
			)),
		},
		error(nil),
	).Once()

	request := httptest.NewRequest("POST", "https://example.com/invoke/echo/reverse", strings.NewReader("ping"))
	request.Header.Set("Content-Type", "text/plain")

	response, err := i.Do(ctx, request)
	require.NoError(err)
	require.NotNil(response)
	assert.Equal(200, response.StatusCode)
	assert.Equal("text/plain", response.Header.Get("Content-Type"))

	body, err := io.ReadAll(response.Body)
	require.NoError(err)
	assert.Equal("gnip", string(body))

	client.AssertExpectations(t)
}

func testDoInvokeError(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		client      = new(mockLambda)
		expectedErr = errors.New("expected")
	)

	i, err := New(client, Options{FunctionName: "echo", Logger: zaptest.NewLogger(t)})
	require.NoError(err)

	client.On("InvokeWithContext", mock.Anything, mock.Anything).Return(nil, expectedErr).Once()

	response, err := i.Do(context.Background(), httptest.NewRequest("GET", "/health", nil))
	assert.Nil(response)
	assert.Equal(expectedErr, err)
	client.AssertExpectations(t)
}

func testDoFunctionError(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		client = new(mockLambda)
	)

	i, err := New(client, Options{FunctionName: "echo", Logger: zaptest.NewLogger(t)})
	require.NoError(err)

	client.On("InvokeWithContext", mock.Anything, mock.Anything).Return(
		&lambda.InvokeOutput{
			StatusCode:    aws.Int64(200),
			FunctionError: aws.String("Unhandled"),
			Payload:       []byte(`{"errorMessage":"boom"}`),
		},
		error(nil),
	).Once()

	response, err := i.Do(context.Background(), httptest.NewRequest("GET", "/health", nil))
	assert.Nil(response)
	assert.ErrorIs(err, ErrFunction)
	assert.Contains(err.Error(), "boom")
	client.AssertExpectations(t)
}

func testDoBadPayload(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		client = new(mockLambda)
	)

	i, err := New(client, Options{FunctionName: "echo", Logger: zaptest.NewLogger(t)})
	require.NoError(err)

	client.On("InvokeWithContext", mock.Anything, mock.Anything).Return(
		&lambda.InvokeOutput{
			StatusCode: aws.Int64(200),
			Payload:    []byte("this is not json"),
		},
		error(nil),
	).Once()

	response, err := i.Do(context.Background(), httptest.NewRequest("GET", "/health", nil))
	assert.Nil(response)
	assert.Error(err)
	client.AssertExpectations(t)
}

func TestInvoker(t *testing.T) {
	t.Run("Do", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			testDoSuccess(t, "")
		})

		t.Run("Qualifier", func(t *testing.T) {
			testDoSuccess(t, "live")
		})

		t.Run("InvokeError", testDoInvokeError)
		t.Run("FunctionError", testDoFunctionError)
		t.Run("BadPayload", testDoBadPayload)
	})
}

func TestNewClient(t *testing.T) {
	for _, record := range []struct {
		name      string
		accessKey string
		secretKey string
	}{
		{name: "DefaultCredentials"},
		{name: "StaticCredentials", accessKey: "key", secretKey: "secret"},
	} {
		t.Run(record.name, func(t *testing.T) {
			client, err := NewClient("us-east-1", record.accessKey, record.secretKey)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
