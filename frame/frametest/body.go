// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frametest

import (
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/lambdabridge/frame"
)

// MockBody is a stretchr mock for a frame.Body.  This is mainly useful when testing error cases.
// For testing with actual frames, frame.FromFrames or frame.FromBytes is more convenient.
type MockBody struct {
	mock.Mock
}

// OnNext sets an expectation for a call to Next that returns the given frame and error.
func (mb *MockBody) OnNext(f frame.Frame, err error) *mock.Call {
	return mb.On("Next").Return(f, err)
}

// OnClose sets an expectation for a call to Close that returns the given error, which may be nil.
func (mb *MockBody) OnClose(err error) *mock.Call {
	return mb.On("Close").Return(err)
}

func (mb *MockBody) Next() (frame.Frame, error) {
	arguments := mb.Called()
	return arguments.Get(0).(frame.Frame), arguments.Error(1)
}

func (mb *MockBody) Close() error {
	return mb.Called().Error(0)
}
