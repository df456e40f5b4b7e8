// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package lambdahttp converts between AWS Lambda function URL events and net/http types.

The Lambda runtime hands a function the entire request body at once, as a string that may
be base64 encoded.  Responses go back either buffered, as an events.LambdaFunctionURLResponse,
or streamed, as an events.LambdaFunctionURLStreamingResponse whose body is read incrementally.
Headers are single-valued in both directions, with cookies carried separately.
*/
package lambdahttp
