// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/lambdabridge/config"
	"github.com/xmidt-org/lambdabridge/invoker"
	"go.uber.org/zap"
)

const applicationName = "invoke"

var errUsage = errors.New("usage: invoke [flags] <service> <handler>")

type command struct {
	service string
	handler string
	headers []string
	data    string
	verbose bool
}

func newFlagSet() *pflag.FlagSet {
	fs := config.NewFlagSet(applicationName)
	fs.StringSliceP("header", "H", nil, "request headers, in name:value form")
	fs.StringP("data", "d", "", "the request body, or @file, or @- for stdin")
	fs.BoolP("verbose", "v", false, "print the response status and headers")
	return fs
}

func parseCommand(fs *pflag.FlagSet) (command, error) {
	if fs.NArg() != 2 {
		return command{}, errUsage
	}

	c := command{
		service: fs.Arg(0),
		handler: fs.Arg(1),
	}

	c.headers, _ = fs.GetStringSlice("header")
	c.data, _ = fs.GetString("data")
	c.verbose, _ = fs.GetBool("verbose")
	return c, nil
}

func readData(data string, stdin io.Reader) ([]byte, error) {
	switch {
	case data == "@-":
		return io.ReadAll(stdin)

	case strings.HasPrefix(data, "@"):
		return os.ReadFile(data[1:])

	default:
		return []byte(data), nil
	}
}

func newRequest(ctx context.Context, c command, body []byte) (*http.Request, error) {
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("https://localhost/invoke/%s/%s", c.service, c.handler),
		bytes.NewReader(body),
	)

	if err != nil {
		return nil, err
	}

	for _, h := range c.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header: %s", h)
		}

		request.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	return request, nil
}

func writeResponse(out io.Writer, response *http.Response, verbose bool) error {
	defer response.Body.Close()
	if verbose {
		fmt.Fprintf(out, "%s %s\n", response.Proto, response.Status)
		if err := response.Header.Write(out); err != nil {
			return err
		}

		fmt.Fprintln(out)
	}

	_, err := io.Copy(out, response.Body)
	return err
}

func run(arguments []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet()
	cfg, _, err := config.New(applicationName, fs, arguments)
	if err != nil {
		return err
	}

	c, err := parseCommand(fs)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	defer logger.Sync()

	client, err := invoker.NewClient(cfg.Invoke.Region, cfg.Invoke.AccessKey, cfg.Invoke.SecretKey)
	if err != nil {
		return err
	}

	i, err := invoker.New(client, invoker.Options{
		FunctionName: cfg.Invoke.Function,
		Qualifier:    cfg.Invoke.Qualifier,
		Logger:       logger,
	})

	if err != nil {
		return err
	}

	body, err := readData(c.data, stdin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Invoke.Timeout)
	defer cancel()

	request, err := newRequest(ctx, c, body)
	if err != nil {
		return err
	}

	response, err := i.Do(ctx, request)
	if err != nil {
		logger.Error("invocation failed", zap.String("function", cfg.Invoke.Function), zap.Error(err))
		return err
	}

	return writeResponse(stdout, response, c.verbose)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
