// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package frame models a response body as a lazy sequence of frames.  A frame carries
either a chunk of data or a set of trailers.  Bodies are single-pass: once a frame has
been returned by Next, it will never be returned again.
*/
package frame
