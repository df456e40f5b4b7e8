// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/lambdabridge/endpoint"
)

type mockEndpoint struct {
	mock.Mock
}

func (m *mockEndpoint) HandleWithOptions(r *http.Request, o endpoint.HandleOptions) *endpoint.Response {
	arguments := m.Called(r, o)
	response, _ := arguments.Get(0).(*endpoint.Response)
	return response
}

// requestResponseOnly matches only the options a Handler is allowed to use
func requestResponseOnly() interface{} {
	return mock.MatchedBy(func(o endpoint.HandleOptions) bool {
		return o.ProtocolMode == endpoint.RequestResponse
	})
}
