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

package models

// Entity is a long-lived ledger object. Rows are soft-deleted only:
// Deleted flips to true but the row and its history remain.
type Entity struct {
	ID                  int64 `gorm:"primarykey;autoIncrement:false"` // encoded shard/realm/num
	Shard               int64
	Realm               int64
	Num                 int64 `gorm:"index"`
	CreatedTimestamp    int64
	ModifiedTimestamp   int64
	Deleted             bool
	Key                 []byte
	PublicKey           *string
	Memo                string
	ProxyAccountID      *int64
	AutoRenewPeriod     *int64
	ExpirationTimestamp *int64
	MaxAutoAssociations *int32
	ReceiverSigRequired bool
}

func (Entity) TableName() string {
	return "entity"
}
