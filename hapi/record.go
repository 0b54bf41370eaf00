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

// Well-known result codes. The full set evolves with the network schema;
// codes outside this list are stored verbatim for forward compatibility.
const (
	StatusOK                         int32 = 0
	StatusInvalidTransaction         int32 = 1
	StatusInsufficientPayerBalance   int32 = 10
	StatusInsufficientAccountBalance int32 = 28
	StatusInvalidAccountID           int32 = 15
	StatusSuccess                    int32 = 22
)

// AccountAmount is one signed transfer line item
type AccountAmount struct {
	AccountID AccountID `cbor:"1,keyasint,omitempty"`
	Amount    int64     `cbor:"2,keyasint,omitempty"`
}

// TransactionReceipt carries the result code and, for entity-creating
// transactions, the id of the created entity
type TransactionReceipt struct {
	Status    int32      `cbor:"1,keyasint,omitempty"`
	AccountID *AccountID `cbor:"2,keyasint,omitempty"`
}

// TransactionRecord is the network's execution outcome for a submitted
// transaction
type TransactionRecord struct {
	Receipt            TransactionReceipt `cbor:"1,keyasint,omitempty"`
	TransactionHash    []byte             `cbor:"2,keyasint,omitempty"`
	ConsensusTimestamp Timestamp          `cbor:"3,keyasint,omitempty"`
	TransactionID      TransactionID      `cbor:"4,keyasint,omitempty"`
	Memo               string             `cbor:"5,keyasint,omitempty"`
	TransactionFee     uint64             `cbor:"6,keyasint,omitempty"`
	Transfers          []AccountAmount    `cbor:"7,keyasint,omitempty"`
}

// Successful reports whether the transaction reached consensus and was
// applied by the network
func (r *TransactionRecord) Successful() bool {
	return r.Receipt.Status == StatusSuccess
}

// DecodeTransactionRecord decodes an execution outcome. Failure to decode
// is an integrity error for the whole containing record file.
func DecodeTransactionRecord(raw []byte) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := cborDec.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
