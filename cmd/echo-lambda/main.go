// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/lambdabridge/config"
	"github.com/xmidt-org/lambdabridge/endpoint"
	"github.com/xmidt-org/lambdabridge/handler"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const applicationName = "echolambda"

// EndpointIn holds the components needed to build the endpoint.
type EndpointIn struct {
	fx.In

	Config  config.Config
	Logger  *zap.Logger
	Metrics endpoint.Metrics
}

func provideConfig() (config.Config, error) {
	c, _, err := config.New(applicationName, config.NewFlagSet(applicationName), nil)
	return c, err
}

func provideLogger(c config.Config) (*zap.Logger, error) {
	return config.NewLogger(c.Log)
}

func provideMetrics() (endpoint.Metrics, error) {
	return endpoint.NewMetrics(prometheus.DefaultRegisterer)
}

func provideEndpoint(in EndpointIn) endpoint.Interface {
	return endpoint.NewBuilder().
		WithLogger(in.Logger).
		WithMetrics(in.Metrics).
		WithTracing(in.Config.Endpoint.Tracing).
		WithChunkSize(in.Config.Endpoint.ChunkSize).
		Bind(newEchoService()).
		Build()
}

// newLambdaHandler selects the adapter method that matches the function's invoke mode.
func newLambdaHandler(c config.Config, h handler.Handler) interface{} {
	if c.Lambda.InvokeMode == config.InvokeModeBuffered {
		return h.HandleBuffered
	}

	return h.Handle
}

// startLambda hands control to the Lambda runtime once the application has started.  The
// runtime loop never returns.
func startLambda(lc fx.Lifecycle, c config.Config, h handler.Handler, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("starting lambda runtime", zap.String("invokeMode", c.Lambda.InvokeMode))
			go lambda.Start(newLambdaHandler(c, h))
			return nil
		},
	})
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideMetrics,
			provideEndpoint,
			handler.New,
		),
		fx.Invoke(startLambda),
	)
}

func main() {
	app := fx.New(appOptions())
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to start %s: %s\n", applicationName, err)
		os.Exit(1)
	}

	app.Run()
}
