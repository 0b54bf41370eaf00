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

// AddCryptoTransfer appends a transfer row. Rows are insert-only and
// identified by the (timestamp, entity, amount) composite.
func (d *Database) AddCryptoTransfer(
	consensusTimestamp int64,
	entityID int64,
	amount int64,
	txn *Txn,
) error {
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	row := models.CryptoTransfer{
		ConsensusTimestamp: consensusTimestamp,
		EntityID:           entityID,
		Amount:             amount,
	}
	if result := txn.Metadata().Create(&row); result.Error != nil {
		return result.Error
	}
	if owned {
		return txn.Commit()
	}
	return nil
}

// CryptoTransfers returns all transfer rows at the given consensus timestamp
func (d *Database) CryptoTransfers(
	consensusTimestamp int64,
) ([]models.CryptoTransfer, error) {
	var rows []models.CryptoTransfer
	result := d.metadata.
		Where("consensus_timestamp = ?", consensusTimestamp).
		Order("entity_id, amount").
		Find(&rows)
	return rows, result.Error
}

// CryptoTransferCount returns the number of transfer rows
func (d *Database) CryptoTransferCount() (int64, error) {
	var count int64
	result := d.metadata.Model(&models.CryptoTransfer{}).Count(&count)
	return count, result.Error
}
