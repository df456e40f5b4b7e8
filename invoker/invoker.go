// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/lambdabridge/lambdahttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

var (
	// ErrFunction is returned when the function itself failed, as opposed to the invocation.
	ErrFunction = errors.New("function error")

	// ErrNoFunctionName is returned by New when no function is configured.
	ErrNoFunctionName = errors.New("a function name is required")
)

var payloadHandle = &codec.JsonHandle{
	BasicHandle: codec.BasicHandle{
		TypeInfos: codec.NewTypeInfos([]string{"json"}),
	},
}

// Options configures an Invoker.
type Options struct {
	// FunctionName is the name or ARN of the function to invoke.  This value is required.
	FunctionName string

	// Qualifier is an optional version or alias.
	Qualifier string

	// Logger receives debug output for each invocation.  If unset, sallust.Default() is used.
	Logger *zap.Logger
}

// Invoker sends *http.Request objects directly to a function that uses the BUFFERED invoke
// mode, bypassing its function URL.  Requests travel as function URL events.
type Invoker struct {
	client       lambdaiface.LambdaAPI
	functionName string
	qualifier    string
	logger       *zap.Logger
}

// New creates an Invoker that uses the given Lambda client.
func New(client lambdaiface.LambdaAPI, o Options) (*Invoker, error) {
	if len(o.FunctionName) == 0 {
		return nil, ErrNoFunctionName
	}

	logger := o.Logger
	if logger == nil {
		logger = sallust.Default()
	}

	return &Invoker{
		client:       client,
		functionName: o.FunctionName,
		qualifier:    o.Qualifier,
		logger:       logger,
	}, nil
}

// NewClient creates a Lambda client for the given region.  Static credentials are used only
// when both keys are supplied; otherwise the default credential chain applies.
func NewClient(region, accessKey, secretKey string) (lambdaiface.LambdaAPI, error) {
	config := &aws.Config{
		Region: aws.String(region),
	}

	if len(accessKey) > 0 && len(secretKey) > 0 {
		config.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, err
	}

	return lambda.New(sess), nil
}

// Do invokes the function synchronously with the given request.  The request body is consumed.
// A function error is reported as ErrFunction, and the function's error payload becomes part
// of the message.
func (i *Invoker) Do(ctx context.Context, r *http.Request) (*http.Response, error) {
	event, err := lambdahttp.NewEvent(r)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if err := codec.NewEncoderBytes(&payload, payloadHandle).Encode(event); err != nil {
		return nil, err
	}

	input := &lambda.InvokeInput{
		FunctionName:   aws.String(i.functionName),
		InvocationType: aws.String(lambda.InvocationTypeRequestResponse),
		Payload:        payload,
	}

	if len(i.qualifier) > 0 {
		input.Qualifier = aws.String(i.qualifier)
	}

	logger := i.logger
	logger.Debug("invoking function", zap.String("function", i.functionName), zap.String("method", r.Method), zap.String("path", r.URL.Path))
	output, err := i.client.InvokeWithContext(ctx, input)
	if err != nil {
		return nil, err
	}

	if output.FunctionError != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrFunction, aws.StringValue(output.FunctionError), output.Payload)
	}

	var response events.LambdaFunctionURLResponse
	if err := codec.NewDecoderBytes(output.Payload, payloadHandle).Decode(&response); err != nil {
		return nil, fmt.Errorf("unable to decode function response: %w", err)
	}

	logger.Debug("function responded", zap.Int64("invokeStatus", aws.Int64Value(output.StatusCode)), zap.Int("code", response.StatusCode))
	return lambdahttp.NewHTTPResponse(response)
}
