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

func mustMarshalKey(t *testing.T, key hapi.Key) []byte {
	t.Helper()
	raw, err := hapi.Marshal(key)
	require.NoError(t, err)
	return raw
}

func TestPublicKeyHexPrimitive(t *testing.T) {
	rawBytes := []byte{0x01, 0x02, 0xab, 0xcd}
	raw := mustMarshalKey(t, hapi.Key{Ed25519: rawBytes})
	got := hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth)
	require.NotNil(t, got)
	assert.Equal(t, "0102abcd", *got)

	raw = mustMarshalKey(t, hapi.Key{ECDSASecp256k1: []byte{0xff}})
	got = hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth)
	require.NotNil(t, got)
	assert.Equal(t, "ff", *got)
}

func TestPublicKeyHexDefaultKey(t *testing.T) {
	// A key with no variant set is the default key and yields the empty
	// string, not nil and not an error
	raw := mustMarshalKey(t, hapi.Key{})
	got := hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth)
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}

func TestPublicKeyHexMalformed(t *testing.T) {
	assert.Nil(t, hapi.PublicKeyHex(nil, hapi.DefaultMaxKeyDepth))
	assert.Nil(
		t,
		hapi.PublicKeyHex([]byte{0xde, 0xad}, hapi.DefaultMaxKeyDepth),
	)
	// Zero-length input is truncated CBOR, not a default key; the
	// default key is the encoded empty map
	assert.Nil(t, hapi.PublicKeyHex([]byte{}, hapi.DefaultMaxKeyDepth))
}

func TestPublicKeyHexSingleElementList(t *testing.T) {
	inner := hapi.Key{Ed25519: []byte{0x11, 0x22}}
	raw := mustMarshalKey(t, hapi.Key{KeyList: []hapi.Key{inner}})
	got := hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth)
	require.NotNil(t, got)
	assert.Equal(t, "1122", *got)

	// Single-element threshold key unwraps the same way
	raw = mustMarshalKey(t, hapi.Key{
		ThresholdKey: &hapi.ThresholdKey{
			Threshold: 1,
			Keys:      []hapi.Key{inner},
		},
	})
	got = hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth)
	require.NotNil(t, got)
	assert.Equal(t, "1122", *got)
}

func TestPublicKeyHexOverNested(t *testing.T) {
	// Two levels of single-element wrapping exceed the one allowed
	// unwrap and resolve to no single key
	inner := hapi.Key{Ed25519: []byte{0x11, 0x22}}
	wrapped := hapi.Key{KeyList: []hapi.Key{inner}}
	raw := mustMarshalKey(t, hapi.Key{KeyList: []hapi.Key{wrapped}})
	assert.Nil(t, hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth))

	// A larger depth limit resolves the same structure
	got := hapi.PublicKeyHex(raw, 2)
	require.NotNil(t, got)
	assert.Equal(t, "1122", *got)
}

func TestPublicKeyHexMultiKey(t *testing.T) {
	keys := []hapi.Key{
		{Ed25519: []byte{0x11}},
		{Ed25519: []byte{0x22}},
	}
	raw := mustMarshalKey(t, hapi.Key{KeyList: keys})
	assert.Nil(t, hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth))

	raw = mustMarshalKey(t, hapi.Key{
		ThresholdKey: &hapi.ThresholdKey{Threshold: 2, Keys: keys},
	})
	assert.Nil(t, hapi.PublicKeyHex(raw, hapi.DefaultMaxKeyDepth))
}
