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

package importer

import (
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database/models"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/hapi"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/recordfile"
)

// handleLiveHashAdd stores a hash claim on success, keyed by the item's
// consensus timestamp. Gated by the claim persistence toggle.
func (i *Importer) handleLiveHashAdd(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error {
	op := item.Transaction.LiveHashAdd
	if err := setRowEntity(row, op.AccountID); err != nil {
		return err
	}
	if !i.config.PersistClaims || !item.Record.Successful() {
		return nil
	}
	encoded, err := op.AccountID.EncodedID()
	if err != nil {
		return err
	}
	return i.db.AddLiveHash(
		&models.LiveHash{
			ConsensusTimestamp: item.ConsensusTimestamp,
			AccountID:          encoded,
			Hash:               hapi.BytesValue(op.Hash, false),
		},
		txn,
	)
}

// handleLiveHashDelete appends a deletion event row on success. Claim
// history is append-only: earlier rows stay in place.
func (i *Importer) handleLiveHashDelete(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error {
	op := item.Transaction.LiveHashDelete
	if err := setRowEntity(row, op.AccountID); err != nil {
		return err
	}
	if !i.config.PersistClaims || !item.Record.Successful() {
		return nil
	}
	encoded, err := op.AccountID.EncodedID()
	if err != nil {
		return err
	}
	return i.db.AddLiveHash(
		&models.LiveHash{
			ConsensusTimestamp: item.ConsensusTimestamp,
			AccountID:          encoded,
			Hash:               hapi.BytesValue(op.Hash, false),
			Deleted:            true,
		},
		txn,
	)
}
