// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package invoker calls a deployed function directly through the Lambda Invoke API, using the
same function URL event shape that the function's handler receives.  This allows an endpoint
hosted behind the request adapter to be exercised without a public function URL.
*/
package invoker
