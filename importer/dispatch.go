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

// handlerFunc applies the per-kind reconciliation rules for one record
// item. The outcome row is built by the dispatcher before the handler
// runs; handlers adjust it (entity id, initial balance) and write any
// derived entity, transfer, or claim rows into the same Txn.
type handlerFunc func(
	item *recordfile.RecordItem,
	row *models.Transaction,
	txn *database.Txn,
) error

func (i *Importer) buildHandlers() map[hapi.TransactionKind]handlerFunc {
	return map[hapi.TransactionKind]handlerFunc{
		hapi.TransactionKindCryptoCreate:   i.handleCryptoCreate,
		hapi.TransactionKindCryptoUpdate:   i.handleCryptoUpdate,
		hapi.TransactionKindCryptoDelete:   i.handleCryptoDelete,
		hapi.TransactionKindCryptoTransfer: i.handleCryptoTransfer,
		hapi.TransactionKindLiveHashAdd:    i.handleLiveHashAdd,
		hapi.TransactionKindLiveHashDelete: i.handleLiveHashDelete,
	}
}

// processItem records one transaction/outcome pair. An unknown kind is
// not an error: the outcome row is still written for ledger completeness
// and only the kind-specific reconciliation is skipped. Fee and network
// transfers from the outcome apply for every kind, including failures,
// since the network collects fees either way.
func (i *Importer) processItem(
	item *recordfile.RecordItem,
	txn *database.Txn,
) error {
	kind := item.Transaction.Kind()
	row, err := i.buildOutcomeRow(item, kind)
	if err != nil {
		return err
	}
	if handler, ok := i.handlers[kind]; ok {
		if err := handler(item, row, txn); err != nil {
			return err
		}
	} else {
		i.logger.Debug(
			"no reconciliation for transaction kind",
			"kind", int32(kind),
			"consensus_timestamp", item.ConsensusTimestamp,
		)
	}
	if err := i.recordTransfers(item, txn); err != nil {
		return err
	}
	var rawTransaction, rawRecord []byte
	if i.config.PersistTransactionBytes {
		rawTransaction = item.TransactionBytes
		rawRecord = item.RecordBytes
	}
	if err := i.db.AddTransaction(row, rawTransaction, rawRecord, txn); err != nil {
		return err
	}
	i.metrics.itemsApplied.WithLabelValues(kind.String()).Inc()
	return nil
}

func (i *Importer) buildOutcomeRow(
	item *recordfile.RecordItem,
	kind hapi.TransactionKind,
) (*models.Transaction, error) {
	body := item.Transaction
	rec := item.Record
	payer, err := body.TransactionID.AccountID.EncodedID()
	if err != nil {
		return nil, err
	}
	node, err := body.NodeAccountID.EncodedID()
	if err != nil {
		return nil, err
	}
	// Valid start is client-chosen, so clamp rather than fail
	validStart := body.TransactionID.ValidStart.NanosecondsMax()
	return &models.Transaction{
		ConsensusTimestamp: item.ConsensusTimestamp,
		PayerAccountID:     payer,
		NodeAccountID:      node,
		ValidStartNs:       validStart,
		Type:               int32(kind),
		Result:             rec.Receipt.Status,
		ChargedFee:         int64(rec.TransactionFee),
		TransactionHash:    rec.TransactionHash,
		Memo:               hapi.Sanitize(body.Memo),
	}, nil
}

// recordTransfers persists the outcome's transfer list. Gated by the
// transfer persistence toggle and applied regardless of the transaction
// result code.
func (i *Importer) recordTransfers(
	item *recordfile.RecordItem,
	txn *database.Txn,
) error {
	if !i.config.PersistTransfers {
		return nil
	}
	for _, xfer := range item.Record.Transfers {
		encoded, err := xfer.AccountID.EncodedID()
		if err != nil {
			return err
		}
		err = i.db.AddCryptoTransfer(
			item.ConsensusTimestamp,
			encoded,
			xfer.Amount,
			txn,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// setRowEntity sets the outcome row's owning entity. A payer that is
// also the target account resolves to the same encoded id, so the row
// always carries one consistent entity reference.
func setRowEntity(row *models.Transaction, accountID hapi.AccountID) error {
	if accountID.IsZero() {
		return nil
	}
	encoded, err := accountID.EncodedID()
	if err != nil {
		return err
	}
	row.EntityID = &encoded
	return nil
}
