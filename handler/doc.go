// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package handler runs an endpoint.Interface inside the AWS Lambda runtime.

The Lambda runtime buffers each request body in full before a function is invoked, so
bidirectional streaming between caller and endpoint is impossible.  Every call made by a
Handler therefore uses endpoint.RequestResponse, regardless of anything in the request.

Typical use, from a function's main:

	e := endpoint.NewBuilder().
		Bind(myService).
		Build()

	lambda.Start(handler.New(e).Handle)
*/
package handler
