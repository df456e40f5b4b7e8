// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package invoker

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/stretchr/testify/mock"
)

type mockLambda struct {
	lambdaiface.LambdaAPI
	mock.Mock
}

func (m *mockLambda) InvokeWithContext(ctx aws.Context, input *lambda.InvokeInput, _ ...request.Option) (*lambda.InvokeOutput, error) {
	arguments := m.Called(ctx, input)
	output, _ := arguments.Get(0).(*lambda.InvokeOutput)
	return output, arguments.Error(1)
}
