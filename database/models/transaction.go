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

// Transaction is one outcome row per record item. Result is stored
// verbatim even for codes this version does not recognize.
type Transaction struct {
	ConsensusTimestamp int64 `gorm:"primarykey;autoIncrement:false"`
	PayerAccountID     int64 `gorm:"index"`
	NodeAccountID      int64
	EntityID           *int64 `gorm:"index"`
	ValidStartNs       int64
	Type               int32
	Result             int32
	InitialBalance     int64
	ChargedFee         int64
	TransactionHash    []byte
	Memo               string
}

func (Transaction) TableName() string {
	return "transaction"
}

// CryptoTransfer is a signed amount moved to or from an entity at a
// consensus timestamp. Insert-only.
type CryptoTransfer struct {
	ID                 uint  `gorm:"primarykey"`
	ConsensusTimestamp int64 `gorm:"index:idx_crypto_transfer_identity,unique"`
	EntityID           int64 `gorm:"index:idx_crypto_transfer_identity,unique"`
	Amount             int64 `gorm:"index:idx_crypto_transfer_identity,unique"`
}

func (CryptoTransfer) TableName() string {
	return "crypto_transfer"
}

// LiveHash is an attached hash claim event. Deletion appends a row with
// Deleted=true rather than removing history.
type LiveHash struct {
	ConsensusTimestamp int64 `gorm:"primarykey;autoIncrement:false"`
	AccountID          int64 `gorm:"index"`
	Hash               []byte
	Deleted            bool
}

func (LiveHash) TableName() string {
	return "live_hash"
}

// RecordFile tracks each applied file; the latest row is the "last
// applied" chain pointer and commits atomically with the file's rows.
// Name is the stream file name, used to resume ingestion after restart;
// files ingested from raw bytes store the content hash as the name.
type RecordFile struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"uniqueIndex"`
	Hash           []byte `gorm:"uniqueIndex"`
	PreviousHash   []byte
	ConsensusStart int64
	ConsensusEnd   int64
	Count          int
}

func (RecordFile) TableName() string {
	return "record_file"
}
