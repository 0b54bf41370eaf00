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
	"gorm.io/gorm/clause"
)

// SetEntity inserts or updates an entity row by its encoded id
func (d *Database) SetEntity(entity *models.Entity, txn *Txn) error {
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	if result := txn.Metadata().
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entity); result.Error != nil {
		return result.Error
	}
	if owned {
		return txn.Commit()
	}
	return nil
}

// GetEntity returns the entity row with the given encoded id, or nil when
// no such entity exists
func (d *Database) GetEntity(id int64, txn *Txn) (*models.Entity, error) {
	tmpEntity := models.Entity{}
	handle := d.metadata
	if txn != nil {
		handle = txn.Metadata()
	}
	result := handle.First(&tmpEntity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpEntity, nil
}

// EntityCount returns the number of entity rows
func (d *Database) EntityCount() (int64, error) {
	var count int64
	result := d.metadata.Model(&models.Entity{}).Count(&count)
	return count, result.Error
}
