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

// handleCryptoCreate creates a new entity on success and reflects the
// initial balance as a synthetic transfer when the outcome's transfer
// list does not already carry it. The synthetic line applies regardless
// of the result code so the opening balance is neither double-counted
// nor lost.
func (i *Importer) handleCryptoCreate(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error {
	op := item.Transaction.CryptoCreate
	rec := item.Record
	row.InitialBalance = op.InitialBalance

	created := rec.Receipt.AccountID
	if created != nil {
		if err := setRowEntity(row, *created); err != nil {
			return err
		}
	}
	if err := i.recordInitialBalance(item, txn); err != nil {
		return err
	}
	if !rec.Successful() || created == nil {
		return nil
	}

	encoded, err := created.EncodedID()
	if err != nil {
		return err
	}
	entity := &models.Entity{
		ID:                  encoded,
		Shard:               created.Shard,
		Realm:               created.Realm,
		Num:                 created.Num,
		CreatedTimestamp:    item.ConsensusTimestamp,
		ModifiedTimestamp:   item.ConsensusTimestamp,
		Key:                 hapi.BytesValue(op.Key, false),
		PublicKey:           hapi.PublicKeyHex(op.Key, i.config.MaxKeyDepth),
		Memo:                hapi.Sanitize(op.Memo),
		ReceiverSigRequired: op.ReceiverSigRequired,
	}
	if op.AutoRenewPeriod != 0 {
		period := op.AutoRenewPeriod
		entity.AutoRenewPeriod = &period
	}
	if !op.ProxyAccountID.IsZero() {
		proxy, err := op.ProxyAccountID.EncodedID()
		if err != nil {
			return err
		}
		entity.ProxyAccountID = &proxy
	}
	i.metrics.entitiesCreated.Inc()
	return i.db.SetEntity(entity, txn)
}

func (i *Importer) recordInitialBalance(
	item *recordfile.RecordItem,
	txn *database.Txn,
) error {
	op := item.Transaction.CryptoCreate
	created := item.Record.Receipt.AccountID
	if !i.config.PersistTransfers || op.InitialBalance == 0 || created == nil {
		return nil
	}
	encoded, err := created.EncodedID()
	if err != nil {
		return err
	}
	// Skip the synthetic line when the network already included it
	for _, xfer := range item.Record.Transfers {
		if xfer.Amount != op.InitialBalance {
			continue
		}
		existing, err := xfer.AccountID.EncodedID()
		if err != nil {
			return err
		}
		if existing == encoded {
			return nil
		}
	}
	return i.db.AddCryptoTransfer(
		item.ConsensusTimestamp,
		encoded,
		op.InitialBalance,
		txn,
	)
}

// handleCryptoUpdate mutates only the fields present in the request, and
// only on success. A proxy target of 0.0.0 is the "no proxy" sentinel
// and stores null rather than a reference to the zero entity. Expiration
// uses saturating composition so far-future values clamp instead of
// wrapping.
func (i *Importer) handleCryptoUpdate(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error {
	op := item.Transaction.CryptoUpdate
	if err := setRowEntity(row, op.AccountID); err != nil {
		return err
	}
	if !item.Record.Successful() {
		return nil
	}

	entity, err := i.loadOrInitEntity(op.AccountID, txn)
	if err != nil {
		return err
	}
	// Delete is terminal for the normal lifecycle: a deleted entity
	// keeps its final state even if a later update slips through
	if entity.Deleted {
		return nil
	}
	entity.ModifiedTimestamp = item.ConsensusTimestamp
	if op.Key != nil {
		entity.Key = hapi.BytesValue(op.Key, false)
		entity.PublicKey = hapi.PublicKeyHex(op.Key, i.config.MaxKeyDepth)
	}
	if op.ExpirationTime != nil {
		expiration := op.ExpirationTime.NanosecondsMax()
		entity.ExpirationTimestamp = &expiration
	}
	if op.AutoRenewPeriod != nil {
		period := *op.AutoRenewPeriod
		entity.AutoRenewPeriod = &period
	}
	if op.ProxyAccountID != nil {
		if op.ProxyAccountID.IsZero() {
			entity.ProxyAccountID = nil
		} else {
			proxy, err := op.ProxyAccountID.EncodedID()
			if err != nil {
				return err
			}
			entity.ProxyAccountID = &proxy
		}
	}
	if op.Memo != nil {
		entity.Memo = hapi.Sanitize(*op.Memo)
	}
	if op.MaxAutoAssociations != nil {
		maxAssoc := *op.MaxAutoAssociations
		entity.MaxAutoAssociations = &maxAssoc
	}
	if op.ReceiverSigRequired != nil {
		entity.ReceiverSigRequired = *op.ReceiverSigRequired
	}
	return i.db.SetEntity(entity, txn)
}

// handleCryptoDelete soft-deletes the target on success: only the
// deleted flag and modified timestamp change, everything else keeps its
// prior value.
func (i *Importer) handleCryptoDelete(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error {
	op := item.Transaction.CryptoDelete
	if err := setRowEntity(row, op.DeleteAccountID); err != nil {
		return err
	}
	if !item.Record.Successful() {
		return nil
	}

	entity, err := i.loadOrInitEntity(op.DeleteAccountID, txn)
	if err != nil {
		return err
	}
	entity.Deleted = true
	entity.ModifiedTimestamp = item.ConsensusTimestamp
	return i.db.SetEntity(entity, txn)
}

// handleCryptoTransfer carries no entity mutation of its own. Entities
// referenced only by transfer lines are not materialized; the transfer
// rows themselves are written by the shared outcome path.
func (i *Importer) handleCryptoTransfer(
	_ *recordfile.RecordItem,
	_ *models.Transaction,
	_ *database.Txn,
) error {
	return nil
}

// loadOrInitEntity returns the stored entity row for an account, or a
// fresh row carrying only the identity fields when the account has never
// been explicitly created.
func (i *Importer) loadOrInitEntity(
	accountID hapi.AccountID,
	txn *database.Txn,
) (*models.Entity, error) {
	encoded, err := accountID.EncodedID()
	if err != nil {
		return nil, err
	}
	entity, err := i.db.GetEntity(encoded, txn)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		entity = &models.Entity{
			ID:    encoded,
			Shard: accountID.Shard,
			Realm: accountID.Realm,
			Num:   accountID.Num,
		}
	}
	return entity, nil
}
