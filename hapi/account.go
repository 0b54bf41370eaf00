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

import "fmt"

// Encoded entity id bit allocation: 15 bits shard, 16 bits realm,
// 32 bits number
const (
	entityShardBits = 15
	entityRealmBits = 16
	entityNumBits   = 32

	maxEntityShard = int64(1)<<entityShardBits - 1
	maxEntityRealm = int64(1)<<entityRealmBits - 1
	maxEntityNum   = int64(1)<<entityNumBits - 1
)

// AccountID is the shard/realm/number triple identifying a ledger entity
type AccountID struct {
	Shard int64 `cbor:"1,keyasint,omitempty"`
	Realm int64 `cbor:"2,keyasint,omitempty"`
	Num   int64 `cbor:"3,keyasint,omitempty"`
}

// IsZero reports whether the id is the 0.0.0 default value. Production
// traffic uses 0.0.0 as a "not set" sentinel, notably for proxy account
// ids on update transactions.
func (a AccountID) IsZero() bool {
	return a.Shard == 0 && a.Realm == 0 && a.Num == 0
}

func (a AccountID) String() string {
	return fmt.Sprintf("%d.%d.%d", a.Shard, a.Realm, a.Num)
}

// EncodedID packs the triple into a single signed 64-bit value usable as
// a primary key
func (a AccountID) EncodedID() (int64, error) {
	if a.Shard < 0 || a.Shard > maxEntityShard ||
		a.Realm < 0 || a.Realm > maxEntityRealm ||
		a.Num < 0 || a.Num > maxEntityNum {
		return 0, fmt.Errorf("entity id out of range: %s", a)
	}
	return a.Shard<<(entityRealmBits+entityNumBits) |
		a.Realm<<entityNumBits |
		a.Num, nil
}

// AccountIDFromEncoded is the inverse of EncodedID
func AccountIDFromEncoded(encoded int64) AccountID {
	return AccountID{
		Shard: encoded >> (entityRealmBits + entityNumBits),
		Realm: encoded >> entityNumBits & maxEntityRealm,
		Num:   encoded & maxEntityNum,
	}
}
