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

package hapi

import (
	"encoding/hex"
)

// DefaultMaxKeyDepth bounds how many levels of single-element list or
// threshold wrapping may be unwrapped when deriving a single public key.
// Key structures are recursive and arrive from untrusted input, so the
// resolver never recurses past this bound.
const DefaultMaxKeyDepth = 1

// Key is the recursive key structure attached to entities. Exactly one
// variant field is set on a well-formed key; a key with no variant set is
// the default (empty) key.
type Key struct {
	Ed25519        []byte        `cbor:"1,keyasint,omitempty"`
	ECDSASecp256k1 []byte        `cbor:"2,keyasint,omitempty"`
	KeyList        []Key         `cbor:"3,keyasint,omitempty"`
	ThresholdKey   *ThresholdKey `cbor:"4,keyasint,omitempty"`
}

// ThresholdKey requires Threshold-of-len(Keys) signatures
type ThresholdKey struct {
	Threshold uint32 `cbor:"1,keyasint,omitempty"`
	Keys      []Key  `cbor:"2,keyasint,omitempty"`
}

// PublicKeyHex derives the single hex-encoded public key represented by the
// encoded key structure, when one exists:
//
//   - a primitive key yields the lower-case hex of its raw bytes, and the
//     default/empty key yields the empty string
//   - a list or threshold key holding exactly one key unwraps to that key,
//     bounded by maxDepth levels of unwrapping
//   - any multi-key policy, over-nested structure, or undecodable input
//     yields nil, meaning no single key can represent it
func PublicKeyHex(keyBytes []byte, maxDepth int) *string {
	if keyBytes == nil {
		return nil
	}
	var key Key
	// The default key is the encoded empty map; zero-length input is
	// truncated CBOR rather than a default instance and yields nil here
	if err := cborDec.Unmarshal(keyBytes, &key); err != nil {
		return nil
	}
	return key.publicKeyHex(0, maxDepth)
}

func (k *Key) publicKeyHex(depth, maxDepth int) *string {
	switch {
	case k.Ed25519 != nil:
		s := hex.EncodeToString(k.Ed25519)
		return &s
	case k.ECDSASecp256k1 != nil:
		s := hex.EncodeToString(k.ECDSASecp256k1)
		return &s
	case k.KeyList != nil:
		return unwrapSingleKey(k.KeyList, depth, maxDepth)
	case k.ThresholdKey != nil:
		return unwrapSingleKey(k.ThresholdKey.Keys, depth, maxDepth)
	default:
		// Default key instance
		s := ""
		return &s
	}
}

func unwrapSingleKey(keys []Key, depth, maxDepth int) *string {
	if len(keys) != 1 || depth >= maxDepth {
		return nil
	}
	return keys[0].publicKeyHex(depth+1, maxDepth)
}
