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

// Package recordfile verifies and decodes hash-chained record files into
// ordered transaction/outcome pairs. Verification has no partial-success
// mode: any integrity failure rejects the whole file, so a RecordFile
// value always represents a fully verified file.
package recordfile

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/hapi"
	"github.com/fxamacker/cbor/v2"
)

// CurrentVersion is the envelope version this decoder understands
const CurrentVersion uint32 = 5

// GenesisHash is the previous-hash value of the first file in a chain
var GenesisHash = make([]byte, sha256.Size)

type envelope struct {
	Version      uint32  `cbor:"1,keyasint"`
	PreviousHash []byte  `cbor:"2,keyasint"`
	Entries      []entry `cbor:"3,keyasint"`
}

type entry struct {
	Transaction cbor.RawMessage `cbor:"1,keyasint"`
	Record      cbor.RawMessage `cbor:"2,keyasint"`
}

// RecordItem pairs one submitted transaction with its execution outcome.
// Items are owned by the file that produced them and are never shared
// across files.
type RecordItem struct {
	Transaction        *hapi.TransactionBody
	Record             *hapi.TransactionRecord
	TransactionBytes   []byte
	RecordBytes        []byte
	ConsensusTimestamp int64
}

// RecordFile is one verified, decoded file of the consensus log chain.
// Immutable once produced; items are ordered by strictly increasing
// consensus timestamp.
type RecordFile struct {
	// Name is the stream file name, when known; Parse leaves it empty
	// and callers reading from disk fill it in
	Name           string
	Hash           []byte
	PreviousHash   []byte
	Items          []RecordItem
	ConsensusStart int64
	ConsensusEnd   int64
	Version        uint32
	Size           int
}

// Parse verifies raw file bytes against the expected previous-file hash
// and decodes them into an ordered RecordFile. Pass GenesisHash (or nil)
// for the first file of a chain. All failures are fatal for the whole
// file: nothing partially decoded is ever returned.
func Parse(raw []byte, expectedPrevHash []byte) (*RecordFile, error) {
	fileHash := sha256.Sum256(raw)

	var env envelope
	if err := hapi.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Version != CurrentVersion {
		return nil, fmt.Errorf(
			"%w: unsupported version %d",
			ErrMalformedEnvelope,
			env.Version,
		)
	}
	if expectedPrevHash == nil {
		expectedPrevHash = GenesisHash
	}
	if !bytes.Equal(env.PreviousHash, expectedPrevHash) {
		return nil, fmt.Errorf(
			"%w: file links to %s, expected %s",
			ErrHashMismatch,
			hex.EncodeToString(env.PreviousHash),
			hex.EncodeToString(expectedPrevHash),
		)
	}
	if len(env.Entries) == 0 {
		return nil, ErrEmptyFile
	}

	items := make([]RecordItem, 0, len(env.Entries))
	var lastTimestamp int64
	for i, ent := range env.Entries {
		item, err := decodeItem(ent)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if i > 0 && item.ConsensusTimestamp <= lastTimestamp {
			return nil, fmt.Errorf(
				"%w: item %d timestamp %d not after %d",
				ErrOutOfOrder,
				i,
				item.ConsensusTimestamp,
				lastTimestamp,
			)
		}
		lastTimestamp = item.ConsensusTimestamp
		items = append(items, item)
	}

	return &RecordFile{
		Hash:           fileHash[:],
		PreviousHash:   env.PreviousHash,
		Items:          items,
		ConsensusStart: items[0].ConsensusTimestamp,
		ConsensusEnd:   items[len(items)-1].ConsensusTimestamp,
		Version:        env.Version,
		Size:           len(raw),
	}, nil
}

func decodeItem(ent entry) (RecordItem, error) {
	body, err := hapi.DecodeTransactionBody(ent.Transaction)
	if err != nil {
		return RecordItem{}, fmt.Errorf(
			"%w: transaction: %w",
			ErrMalformedEnvelope,
			err,
		)
	}
	rec, err := hapi.DecodeTransactionRecord(ent.Record)
	if err != nil {
		return RecordItem{}, fmt.Errorf(
			"%w: record: %w",
			ErrMalformedEnvelope,
			err,
		)
	}
	// A consensus timestamp that does not compose indicates corrupt input
	consensus, err := rec.ConsensusTimestamp.Nanoseconds()
	if err != nil {
		return RecordItem{}, err
	}
	return RecordItem{
		Transaction: body,
		Record:      rec,
		// The envelope decoder hands out sub-slices of the file buffer,
		// which lives until the file is committed
		TransactionBytes:   hapi.BytesValue(ent.Transaction, false),
		RecordBytes:        hapi.BytesValue(ent.Record, false),
		ConsensusTimestamp: consensus,
	}, nil
}
