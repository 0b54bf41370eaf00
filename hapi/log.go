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

import "encoding/hex"

// ContractLogInfo is an emitted smart contract log entry with its indexed
// topic words
type ContractLogInfo struct {
	ContractID AccountID `cbor:"1,keyasint,omitempty"`
	Bloom      []byte    `cbor:"2,keyasint,omitempty"`
	Topics     [][]byte  `cbor:"3,keyasint,omitempty"`
	Data       []byte    `cbor:"4,keyasint,omitempty"`
}

// Topic returns the hex form of the indexed topic word with leading zero
// bytes stripped. A stored value that strips to nothing normalizes to
// "00", while a genuinely zero-length stored value returns the empty
// string. An out-of-range index returns nil, signaling an absent topic.
func (l *ContractLogInfo) Topic(index int) *string {
	if index < 0 || index >= len(l.Topics) {
		return nil
	}
	word := l.Topics[index]
	if len(word) == 0 {
		s := ""
		return &s
	}
	start := 0
	for start < len(word) && word[start] == 0 {
		start++
	}
	if start == len(word) {
		s := "00"
		return &s
	}
	s := hex.EncodeToString(word[start:])
	return &s
}
