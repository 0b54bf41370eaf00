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

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database/models"
	"gorm.io/gorm"
)

// AddRecordFile appends the applied-file row that advances the chain
// pointer. It must be part of the same Txn as the file's derived rows so
// the pointer never advances past a partially applied file.
func (d *Database) AddRecordFile(row *models.RecordFile, txn *Txn) error {
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	if result := txn.Metadata().Create(row); result.Error != nil {
		return result.Error
	}
	if owned {
		return txn.Commit()
	}
	return nil
}

// LatestRecordFile returns the most recently applied record file row, or
// nil when no file has been applied yet
func (d *Database) LatestRecordFile(txn *Txn) (*models.RecordFile, error) {
	tmpFile := models.RecordFile{}
	handle := d.metadata
	if txn != nil {
		handle = txn.Metadata()
	}
	result := handle.Order("id DESC").First(&tmpFile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpFile, nil
}

// RecordFileCount returns the number of applied record files
func (d *Database) RecordFileCount() (int64, error) {
	var count int64
	result := d.metadata.Model(&models.RecordFile{}).Count(&count)
	return count, result.Error
}
