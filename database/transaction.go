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

package database

import (
	"errors"
	"fmt"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database/models"
	badger "github.com/dgraph-io/badger/v4"
	"gorm.io/gorm"
)

// TransactionBlobKey generates the blob store key for a transaction's raw
// bytes
func TransactionBlobKey(consensusTimestamp int64) []byte {
	return fmt.Appendf(nil, "tx:%d", consensusTimestamp)
}

// RecordBlobKey generates the blob store key for an outcome's raw bytes
func RecordBlobKey(consensusTimestamp int64) []byte {
	return fmt.Appendf(nil, "rec:%d", consensusTimestamp)
}

// AddTransaction appends one outcome row. Raw transaction and record
// bytes, when provided, go to the blob store keyed by the row's consensus
// timestamp and commit in the same Txn.
func (d *Database) AddTransaction(
	row *models.Transaction,
	rawTransaction []byte,
	rawRecord []byte,
	txn *Txn,
) error {
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	if result := txn.Metadata().Create(row); result.Error != nil {
		return result.Error
	}
	if rawTransaction != nil {
		key := TransactionBlobKey(row.ConsensusTimestamp)
		if err := txn.Blob().Set(key, rawTransaction); err != nil {
			return err
		}
	}
	if rawRecord != nil {
		key := RecordBlobKey(row.ConsensusTimestamp)
		if err := txn.Blob().Set(key, rawRecord); err != nil {
			return err
		}
	}
	if owned {
		return txn.Commit()
	}
	return nil
}

// GetTransaction returns the outcome row at the given consensus timestamp,
// or nil when none exists
func (d *Database) GetTransaction(
	consensusTimestamp int64,
) (*models.Transaction, error) {
	tmpTransaction := models.Transaction{}
	result := d.metadata.First(&tmpTransaction, consensusTimestamp)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpTransaction, nil
}

// TransactionCount returns the number of outcome rows
func (d *Database) TransactionCount() (int64, error) {
	var count int64
	result := d.metadata.Model(&models.Transaction{}).Count(&count)
	return count, result.Error
}

// GetBlob returns the raw bytes stored under the given blob key, built
// with TransactionBlobKey or RecordBlobKey, or nil when raw persistence
// was disabled for that row
func (d *Database) GetBlob(key []byte) ([]byte, error) {
	var ret []byte
	err := d.blob.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var vErr error
		ret, vErr = item.ValueCopy(nil)
		return vErr
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ret, nil
}
