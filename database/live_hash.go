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
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database/models"
)

// AddLiveHash appends a live hash event row. History is append-only:
// a deletion is a new row with Deleted=true, never a removal.
func (d *Database) AddLiveHash(row *models.LiveHash, txn *Txn) error {
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

// LiveHashes returns all live hash event rows for an account in
// consensus order
func (d *Database) LiveHashes(accountID int64) ([]models.LiveHash, error) {
	var rows []models.LiveHash
	result := d.metadata.
		Where("account_id = ?", accountID).
		Order("consensus_timestamp").
		Find(&rows)
	return rows, result.Error
}

// LiveHashCount returns the number of live hash event rows
func (d *Database) LiveHashCount() (int64, error) {
	var count int64
	result := d.metadata.Model(&models.LiveHash{}).Count(&count)
	return count, result.Error
}
