// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"unicode/utf8"

	kitendpoint "github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/lambdabridge/endpoint"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const echoServiceName = "echo"

func echo(ctx context.Context, request interface{}) (interface{}, error) {
	inv := request.(*endpoint.Invocation)
	sallust.Get(ctx).Debug("echo", zap.Int("length", len(inv.Input)))
	return inv.Input, nil
}

// reverse reverses runes when the input is valid UTF-8, and bytes otherwise.
func reverse(_ context.Context, request interface{}) (interface{}, error) {
	input := request.(*endpoint.Invocation).Input
	if utf8.Valid(input) {
		runes := []rune(string(input))
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}

		return string(runes), nil
	}

	output := make([]byte, len(input))
	for i, b := range input {
		output[len(input)-1-i] = b
	}

	return output, nil
}

func newEchoService() endpoint.Service {
	return endpoint.Service{
		Name: echoServiceName,
		Handlers: map[string]kitendpoint.Endpoint{
			"echo":    echo,
			"reverse": reverse,
		},
	}
}
