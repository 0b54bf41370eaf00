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
	"github.com/fxamacker/cbor/v2"
)

// TransactionKind identifies the operation a transaction body carries.
// Values are part of the stored schema and must not be renumbered.
type TransactionKind int32

const (
	TransactionKindUnknown TransactionKind = iota
	TransactionKindCryptoCreate
	TransactionKindCryptoUpdate
	TransactionKindCryptoDelete
	TransactionKindCryptoTransfer
	TransactionKindLiveHashAdd
	TransactionKindLiveHashDelete
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindCryptoCreate:
		return "cryptocreate"
	case TransactionKindCryptoUpdate:
		return "cryptoupdate"
	case TransactionKindCryptoDelete:
		return "cryptodelete"
	case TransactionKindCryptoTransfer:
		return "cryptotransfer"
	case TransactionKindLiveHashAdd:
		return "livehashadd"
	case TransactionKindLiveHashDelete:
		return "livehashdelete"
	default:
		return "unknown"
	}
}

// TransactionID identifies a submitted transaction by its payer and the
// client-chosen valid start time
type TransactionID struct {
	AccountID  AccountID `cbor:"1,keyasint,omitempty"`
	ValidStart Timestamp `cbor:"2,keyasint,omitempty"`
}

// TransactionBody is the submitted transaction envelope. Exactly one
// operation field is set; an envelope carrying an operation this version
// does not know about decodes with none set and reports
// TransactionKindUnknown.
type TransactionBody struct {
	TransactionID  TransactionID `cbor:"1,keyasint,omitempty"`
	NodeAccountID  AccountID     `cbor:"2,keyasint,omitempty"`
	TransactionFee uint64        `cbor:"3,keyasint,omitempty"`
	Memo           string        `cbor:"4,keyasint,omitempty"`

	CryptoCreate   *CryptoCreateBody   `cbor:"10,keyasint,omitempty"`
	CryptoUpdate   *CryptoUpdateBody   `cbor:"11,keyasint,omitempty"`
	CryptoDelete   *CryptoDeleteBody   `cbor:"12,keyasint,omitempty"`
	CryptoTransfer *CryptoTransferBody `cbor:"13,keyasint,omitempty"`
	LiveHashAdd    *LiveHashAddBody    `cbor:"14,keyasint,omitempty"`
	LiveHashDelete *LiveHashDeleteBody `cbor:"15,keyasint,omitempty"`
}

func (b *TransactionBody) Kind() TransactionKind {
	switch {
	case b.CryptoCreate != nil:
		return TransactionKindCryptoCreate
	case b.CryptoUpdate != nil:
		return TransactionKindCryptoUpdate
	case b.CryptoDelete != nil:
		return TransactionKindCryptoDelete
	case b.CryptoTransfer != nil:
		return TransactionKindCryptoTransfer
	case b.LiveHashAdd != nil:
		return TransactionKindLiveHashAdd
	case b.LiveHashDelete != nil:
		return TransactionKindLiveHashDelete
	default:
		return TransactionKindUnknown
	}
}

// CryptoCreateBody creates a new account. Key holds the raw encoded key
// structure; the single public key, when derivable, is extracted at
// reconciliation time.
type CryptoCreateBody struct {
	Key                 cbor.RawMessage `cbor:"1,keyasint,omitempty"`
	InitialBalance      int64           `cbor:"2,keyasint,omitempty"`
	AutoRenewPeriod     int64           `cbor:"3,keyasint,omitempty"`
	ProxyAccountID      AccountID       `cbor:"4,keyasint,omitempty"`
	Memo                string          `cbor:"5,keyasint,omitempty"`
	ReceiverSigRequired bool            `cbor:"6,keyasint,omitempty"`
}

// CryptoUpdateBody mutates an existing account. Optional fields use
// pointers so "absent" and "set to zero value" stay distinguishable; only
// present fields are applied.
type CryptoUpdateBody struct {
	AccountID           AccountID       `cbor:"1,keyasint,omitempty"`
	Key                 cbor.RawMessage `cbor:"2,keyasint,omitempty"`
	ExpirationTime      *Timestamp      `cbor:"3,keyasint,omitempty"`
	AutoRenewPeriod     *int64          `cbor:"4,keyasint,omitempty"`
	ProxyAccountID      *AccountID      `cbor:"5,keyasint,omitempty"`
	Memo                *string         `cbor:"6,keyasint,omitempty"`
	MaxAutoAssociations *int32          `cbor:"7,keyasint,omitempty"`
	ReceiverSigRequired *bool           `cbor:"8,keyasint,omitempty"`
}

// CryptoDeleteBody marks an account deleted, moving any remaining balance
// to the transfer account
type CryptoDeleteBody struct {
	DeleteAccountID   AccountID `cbor:"1,keyasint,omitempty"`
	TransferAccountID AccountID `cbor:"2,keyasint,omitempty"`
}

// CryptoTransferBody moves amounts between accounts. Amounts in a
// transfer list sum to zero on well-formed input.
type CryptoTransferBody struct {
	Transfers []AccountAmount `cbor:"1,keyasint,omitempty"`
}

// LiveHashAddBody attaches a hash claim to an account
type LiveHashAddBody struct {
	AccountID AccountID `cbor:"1,keyasint,omitempty"`
	Hash      []byte    `cbor:"2,keyasint,omitempty"`
	Keys      []Key     `cbor:"3,keyasint,omitempty"`
	Duration  int64     `cbor:"4,keyasint,omitempty"`
}

// LiveHashDeleteBody revokes a previously attached hash claim
type LiveHashDeleteBody struct {
	AccountID AccountID `cbor:"1,keyasint,omitempty"`
	Hash      []byte    `cbor:"2,keyasint,omitempty"`
}

// DecodeTransactionBody decodes a submitted transaction envelope. Failure
// to decode is an integrity error for the whole containing record file.
func DecodeTransactionBody(raw []byte) (*TransactionBody, error) {
	var body TransactionBody
	if err := cborDec.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return &body, nil
}
