// Copyright 2026 Hedera Mirror Node Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hapi_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/hapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesValueEmpty(t *testing.T) {
	// Empty input returns the same shared instance every time
	a := hapi.BytesValue(nil, false)
	b := hapi.BytesValue([]byte{}, false)
	c := hapi.BytesValue(nil, true)
	require.NotNil(t, a)
	assert.Len(t, a, 0)
	assert.Equal(t, reflect.ValueOf(a).Pointer(), reflect.ValueOf(b).Pointer())
	assert.Equal(t, reflect.ValueOf(a).Pointer(), reflect.ValueOf(c).Pointer())
}

func TestBytesValueSmallCopies(t *testing.T) {
	src := bytes.Repeat([]byte{0xaa}, 64)
	out := hapi.BytesValue(src, false)
	assert.Equal(t, src, out)
	assert.False(t, sameBacking(src, out))
	// Mutating the source must not show through
	src[0] = 0xbb
	assert.Equal(t, byte(0xaa), out[0])
}

func TestBytesValueLargeAliases(t *testing.T) {
	src := bytes.Repeat([]byte{0xcc}, 65)
	out := hapi.BytesValue(src, false)
	assert.Equal(t, src, out)
	assert.True(t, sameBacking(src, out))
}

func TestBytesValuePooledAlwaysCopies(t *testing.T) {
	for _, size := range []int{1, 64, 65, 4096} {
		src := bytes.Repeat([]byte{0xdd}, size)
		out := hapi.BytesValue(src, true)
		assert.Equal(t, src, out)
		assert.False(t, sameBacking(src, out))
	}
}

func sameBacking(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		// Zero-length slices compare by the shared empty instance;
		// both come from the same backing when their headers match
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}
