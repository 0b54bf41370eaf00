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
	"strings"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborDec cbor.DecMode
	cborEnc cbor.EncMode
)

func init() {
	var err error
	// Reject duplicate map keys so a malformed envelope can't silently
	// shadow fields
	decOpts := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}
	if cborDec, err = decOpts.DecMode(); err != nil {
		panic(err)
	}
	encOpts := cbor.CoreDetEncOptions()
	if cborEnc, err = encOpts.EncMode(); err != nil {
		panic(err)
	}
}

// Unmarshal decodes schema bytes with the shared decoder options
func Unmarshal(data []byte, v any) error {
	return cborDec.Unmarshal(data, v)
}

// Marshal encodes schema values deterministically
func Marshal(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

// Sanitize strips NUL bytes from user-supplied strings before they reach
// the store, replacing each with the Unicode replacement character
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\x00", "�")
}
