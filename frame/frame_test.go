// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestData(t *testing.T) {
	assert := assert.New(t)
	f := Data([]byte("hello"))

	assert.True(f.IsData())
	assert.False(f.IsTrailers())
	assert.Equal([]byte("hello"), f.Data())
	assert.Nil(f.Trailers())
	assert.NoError(f.Validate())
}

func TestTrailers(t *testing.T) {
	assert := assert.New(t)
	f := Trailers(http.Header{"Grpc-Status": []string{"0"}})

	assert.False(f.IsData())
	assert.True(f.IsTrailers())
	assert.Nil(f.Data())
	assert.Equal(http.Header{"Grpc-Status": []string{"0"}}, f.Trailers())
	assert.NoError(f.Validate())
}

func TestZeroFrame(t *testing.T) {
	assert := assert.New(t)
	var f Frame

	assert.False(f.IsData())
	assert.False(f.IsTrailers())
	assert.Nil(f.Data())
	assert.Nil(f.Trailers())
	assert.ErrorIs(f.Validate(), ErrMalformed)
}
