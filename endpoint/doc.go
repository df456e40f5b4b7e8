// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package endpoint binds a set of services, each a map of go-kit endpoints, behind a single
HTTP-shaped entry point.  Callers hand an *http.Request to HandleWithOptions along with the
protocol mode to use and receive a Response whose body is a lazy sequence of frames.

Hosts that cannot stream request and response bodies concurrently, such as serverless
runtimes that buffer the whole request, must use RequestResponse.  BidiStream is suitable
for long-lived HTTP/2 servers.

The routes served by an Endpoint are:

	GET  /discover                   a JSON manifest of the bound services
	GET  /health                     always 200 with an empty body
	POST /invoke/{service}/{handler} invokes a single handler with the request body as input
*/
package endpoint
