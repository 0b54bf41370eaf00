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
	"testing"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/hapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic(t *testing.T) {
	info := &hapi.ContractLogInfo{
		Topics: [][]byte{
			{0, 0, 0, 0, 0, 0, 1},
			{0, 127},
			{0xff},
			{0},
			{0, 0, 0, 0},
			{},
		},
	}
	testDefs := []struct {
		index    int
		expected string
	}{
		{0, "01"},
		{1, "7f"},
		{2, "ff"},
		// Values stripping to nothing normalize to a single zero byte
		{3, "00"},
		{4, "00"},
		// A genuinely zero-length stored value stays empty
		{5, ""},
	}
	for _, testDef := range testDefs {
		got := info.Topic(testDef.index)
		require.NotNil(t, got, "index %d", testDef.index)
		assert.Equal(t, testDef.expected, *got, "index %d", testDef.index)
	}
}

func TestTopicOutOfRange(t *testing.T) {
	info := &hapi.ContractLogInfo{Topics: [][]byte{{0x01}}}
	assert.Nil(t, info.Topic(-1))
	assert.Nil(t, info.Topic(1))
	assert.Nil(t, info.Topic(999))

	empty := &hapi.ContractLogInfo{}
	assert.Nil(t, empty.Topic(0))
}
