// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/lambdabridge/frame"
)

const (
	// InvokeModeStream selects the response streaming Lambda handler.
	InvokeModeStream = "stream"

	// InvokeModeBuffered selects the buffered Lambda handler.
	InvokeModeBuffered = "buffered"

	DefaultLogLevel      = "info"
	DefaultInvokeTimeout = 30 * time.Second
)

const (
	keyLogLevel         = "log.level"
	keyLogDevelopment   = "log.development"
	keyLogOutputPaths   = "log.outputPaths"
	keyEndpointTracing  = "endpoint.tracing"
	keyEndpointChunk    = "endpoint.chunkSize"
	keyLambdaInvokeMode = "lambda.invokeMode"
	keyInvokeFunction   = "invoke.function"
	keyInvokeQualifier  = "invoke.qualifier"
	keyInvokeRegion     = "invoke.region"
	keyInvokeAccessKey  = "invoke.accessKey"
	keyInvokeSecretKey  = "invoke.secretKey"
	keyInvokeTimeout    = "invoke.timeout"
)

// ErrInvalidInvokeMode indicates a lambda.invokeMode that is neither stream nor buffered.
var ErrInvalidInvokeMode = errors.New("invalid invoke mode")

type Log struct {
	Level       string
	Development bool
	OutputPaths []string
}

type Endpoint struct {
	// Tracing enables otelhttp instrumentation of the endpoint's router.
	Tracing bool

	// ChunkSize is the maximum size of a response body frame.
	ChunkSize int
}

type Lambda struct {
	InvokeMode string
}

// Invoke configures direct invocation of a deployed function.
type Invoke struct {
	Function  string
	Qualifier string
	Region    string
	AccessKey string
	SecretKey string
	Timeout   time.Duration
}

// Config is the complete configuration of a lambdabridge binary.
type Config struct {
	Log      Log
	Endpoint Endpoint
	Lambda   Lambda
	Invoke   Invoke
}

// SetDefaults registers the default value of each key.  Every key must have a default so
// that environment variables are honored by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyLogDevelopment, false)
	v.SetDefault(keyLogOutputPaths, []string{"stdout"})
	v.SetDefault(keyEndpointTracing, false)
	v.SetDefault(keyEndpointChunk, frame.DefaultChunkSize)
	v.SetDefault(keyLambdaInvokeMode, InvokeModeStream)
	v.SetDefault(keyInvokeFunction, "")
	v.SetDefault(keyInvokeQualifier, "")
	v.SetDefault(keyInvokeRegion, "us-east-1")
	v.SetDefault(keyInvokeAccessKey, "")
	v.SetDefault(keyInvokeSecretKey, "")
	v.SetDefault(keyInvokeTimeout, DefaultInvokeTimeout)
}

// Unmarshal decodes and validates a Config.  Durations may be given as strings such as "15s",
// and output paths as a comma-separated string.
func Unmarshal(v *viper.Viper) (Config, error) {
	var c Config
	err := v.Unmarshal(
		&c,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		),
	)

	if err != nil {
		return Config{}, err
	}

	c.Lambda.InvokeMode = strings.ToLower(strings.TrimSpace(c.Lambda.InvokeMode))
	switch c.Lambda.InvokeMode {
	case InvokeModeStream, InvokeModeBuffered:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidInvokeMode, c.Lambda.InvokeMode)
	}

	return c, nil
}

// New is the usual way to obtain a Config: it builds a Viper instance, parses and binds the
// arguments, reads any configuration file and unmarshals the result.
func New(applicationName string, fs *pflag.FlagSet, arguments []string) (Config, *viper.Viper, error) {
	v := NewViper(applicationName)
	if err := ParseAndBind(v, fs, arguments); err != nil {
		return Config{}, nil, err
	}

	if err := Read(v); err != nil {
		return Config{}, nil, err
	}

	c, err := Unmarshal(v)
	return c, v, err
}
