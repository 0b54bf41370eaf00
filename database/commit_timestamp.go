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
	"encoding/binary"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var blobCommitTimestampKey = []byte("metadata_commit_timestamp")

// CommitTimestamp mirrors the latest commit timestamp into the metadata
// store; the same value is written to the blob store in the same commit
type CommitTimestamp struct {
	ID        uint `gorm:"primarykey"`
	Timestamp int64
}

func (CommitTimestamp) TableName() string {
	return "commit_timestamp"
}

type CommitTimestampError struct {
	MetadataTimestamp int64
	BlobTimestamp     int64
}

func (e CommitTimestampError) Error() string {
	return fmt.Sprintf(
		"commit timestamp mismatch: %d (metadata) != %d (blob)",
		e.MetadataTimestamp,
		e.BlobTimestamp,
	)
}

// checkCommitTimestamp detects a torn commit from a previous run by
// comparing the timestamps recorded in each store
func (d *Database) checkCommitTimestamp() error {
	var row CommitTimestamp
	result := d.metadata.First(&row, 1)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// No timestamp in the database
			return nil
		}
		return fmt.Errorf("failed to get metadata commit timestamp: %w", result.Error)
	}
	var blobTimestamp int64
	err := d.blob.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobCommitTimestampKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("unexpected commit timestamp length %d", len(val))
			}
			//nolint:gosec // round-trips the value written below
			blobTimestamp = int64(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			blobTimestamp = 0
		} else {
			return fmt.Errorf("failed to get blob commit timestamp: %w", err)
		}
	}
	if blobTimestamp != row.Timestamp {
		return CommitTimestampError{
			MetadataTimestamp: row.Timestamp,
			BlobTimestamp:     blobTimestamp,
		}
	}
	return nil
}

func (d *Database) updateCommitTimestamp(txn *Txn, timestamp int64) error {
	row := CommitTimestamp{ID: 1, Timestamp: timestamp}
	if result := txn.Metadata().
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row); result.Error != nil {
		return result.Error
	}
	val := make([]byte, 8)
	//nolint:gosec // UnixMilli fits well within uint64
	binary.BigEndian.PutUint64(val, uint64(timestamp))
	return txn.Blob().Set(blobCommitTimestampKey, val)
}
