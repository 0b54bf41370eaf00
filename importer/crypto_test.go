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

package importer_test

import (
	"math"
	"testing"

	"github.com/Ndacyayisenga-droid/hedera-mirror-node/database/models"
	"github.com/Ndacyayisenga-droid/hedera-mirror-node/hapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdID = hapi.AccountID{Num: 1001}

func createEntry(
	t *testing.T,
	seconds int64,
	op *hapi.CryptoCreateBody,
	status int32,
) testEntry {
	t.Helper()
	body := baseBody(seconds)
	body.CryptoCreate = op
	rec := baseRecord(seconds, status)
	if status == hapi.StatusSuccess {
		rec.Receipt.AccountID = &createdID
	}
	return buildEntry(t, body, rec)
}

func mustKey(t *testing.T, raw []byte) []byte {
	t.Helper()
	encoded, err := hapi.Marshal(hapi.Key{Ed25519: raw})
	require.NoError(t, err)
	return encoded
}

func TestCryptoCreate(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	key := mustKey(t, []byte{0xaa, 0xbb})
	raw := buildFile(t, nil, createEntry(
		t,
		100,
		&hapi.CryptoCreateBody{
			Key:                 key,
			InitialBalance:      1000,
			AutoRenewPeriod:     7776000,
			Memo:                "new account",
			ReceiverSigRequired: true,
		},
		hapi.StatusSuccess,
	))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity, err := p.db.GetEntity(1001, nil)
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, int64(100_000_000_000), entity.CreatedTimestamp)
	assert.Equal(t, entity.CreatedTimestamp, entity.ModifiedTimestamp)
	assert.False(t, entity.Deleted)
	assert.Equal(t, "new account", entity.Memo)
	assert.True(t, entity.ReceiverSigRequired)
	require.NotNil(t, entity.AutoRenewPeriod)
	assert.Equal(t, int64(7776000), *entity.AutoRenewPeriod)
	assert.Nil(t, entity.ProxyAccountID)
	require.NotNil(t, entity.PublicKey)
	assert.Equal(t, "aabb", *entity.PublicKey)

	// Exactly one synthetic transfer reflects the opening balance
	xfers, err := p.db.CryptoTransfers(100_000_000_000)
	require.NoError(t, err)
	require.Len(t, xfers, 1)
	assert.Equal(t, int64(1001), xfers[0].EntityID)
	assert.Equal(t, int64(1000), xfers[0].Amount)

	row, err := p.db.GetTransaction(100_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, int64(1000), row.InitialBalance)
	require.NotNil(t, row.EntityID)
	assert.Equal(t, int64(1001), *row.EntityID)
}

func TestCryptoCreateExplicitInitialTransfer(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	body := baseBody(100)
	body.CryptoCreate = &hapi.CryptoCreateBody{InitialBalance: 1000}
	rec := baseRecord(100, hapi.StatusSuccess)
	rec.Receipt.AccountID = &createdID
	// The network already included the opening balance line
	rec.Transfers = []hapi.AccountAmount{
		{AccountID: payerID, Amount: -1000},
		{AccountID: createdID, Amount: 1000},
	}
	raw := buildFile(t, nil, buildEntry(t, body, rec))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	// No synthetic duplicate
	xfers, err := p.db.CryptoTransfers(100_000_000_000)
	require.NoError(t, err)
	assert.Len(t, xfers, 2)
}

func TestCryptoCreateFailed(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	raw := buildFile(t, nil, createEntry(
		t,
		100,
		&hapi.CryptoCreateBody{InitialBalance: 1000},
		hapi.StatusInsufficientPayerBalance,
	))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	// No entity and no synthetic transfer, but the outcome row remains
	entityCount, err := p.db.EntityCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), entityCount)
	row, err := p.db.GetTransaction(100_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, hapi.StatusInsufficientPayerBalance, row.Result)
}

func createdEntitySnapshot(
	t *testing.T,
	p *testPipeline,
) *models.Entity {
	t.Helper()
	entity, err := p.db.GetEntity(1001, nil)
	require.NoError(t, err)
	require.NotNil(t, entity)
	return entity
}

func setupCreatedEntity(t *testing.T, p *testPipeline) []byte {
	t.Helper()
	key := mustKey(t, []byte{0xaa, 0xbb})
	raw := buildFile(t, nil, createEntry(
		t,
		100,
		&hapi.CryptoCreateBody{
			Key:             key,
			InitialBalance:  1000,
			AutoRenewPeriod: 7776000,
			Memo:            "new account",
		},
		hapi.StatusSuccess,
	))
	rf, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)
	return rf.Hash
}

func TestCryptoUpdate(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)

	newMemo := "updated"
	maxAssoc := int32(10)
	body := baseBody(200)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID:           createdID,
		ExpirationTime:      &hapi.Timestamp{Seconds: 300},
		Memo:                &newMemo,
		MaxAutoAssociations: &maxAssoc,
		ProxyAccountID:      &hapi.AccountID{Num: 999},
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusSuccess)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity := createdEntitySnapshot(t, p)
	assert.Equal(t, "updated", entity.Memo)
	assert.Equal(t, int64(200_000_000_000), entity.ModifiedTimestamp)
	assert.Equal(t, int64(100_000_000_000), entity.CreatedTimestamp)
	require.NotNil(t, entity.ExpirationTimestamp)
	assert.Equal(t, int64(300_000_000_000), *entity.ExpirationTimestamp)
	require.NotNil(t, entity.MaxAutoAssociations)
	assert.Equal(t, int32(10), *entity.MaxAutoAssociations)
	require.NotNil(t, entity.ProxyAccountID)
	assert.Equal(t, int64(999), *entity.ProxyAccountID)
	// Fields absent from the request keep their values
	require.NotNil(t, entity.AutoRenewPeriod)
	assert.Equal(t, int64(7776000), *entity.AutoRenewPeriod)
	require.NotNil(t, entity.PublicKey)
	assert.Equal(t, "aabb", *entity.PublicKey)
}

func TestCryptoUpdateProxySentinel(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)

	// An explicit 0.0.0 proxy means "no proxy", not the zero entity
	body := baseBody(200)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID:      createdID,
		ProxyAccountID: &hapi.AccountID{},
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusSuccess)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity := createdEntitySnapshot(t, p)
	assert.Nil(t, entity.ProxyAccountID)
}

func TestCryptoUpdateExpirationSaturates(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)

	body := baseBody(200)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID:      createdID,
		ExpirationTime: &hapi.Timestamp{Seconds: math.MaxInt64},
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusSuccess)),
	)
	rf, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity := createdEntitySnapshot(t, p)
	require.NotNil(t, entity.ExpirationTimestamp)
	assert.Equal(t, int64(math.MaxInt64), *entity.ExpirationTimestamp)

	// Far-past values clamp to the other bound
	body = baseBody(300)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID:      createdID,
		ExpirationTime: &hapi.Timestamp{Seconds: math.MinInt64},
	}
	raw = buildFile(
		t,
		rf.Hash,
		buildEntry(t, body, baseRecord(300, hapi.StatusSuccess)),
	)
	_, err = p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity = createdEntitySnapshot(t, p)
	require.NotNil(t, entity.ExpirationTimestamp)
	assert.Equal(t, int64(math.MinInt64), *entity.ExpirationTimestamp)
}

func TestCryptoUpdateFailed(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)
	before := createdEntitySnapshot(t, p)

	newMemo := "should not apply"
	body := baseBody(200)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID: createdID,
		Memo:      &newMemo,
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusInvalidAccountID)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	// Entity unchanged, outcome row still recorded with the failure code
	after := createdEntitySnapshot(t, p)
	assert.Equal(t, before, after)
	row, err := p.db.GetTransaction(200_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, hapi.StatusInvalidAccountID, row.Result)
	require.NotNil(t, row.EntityID)
	assert.Equal(t, int64(1001), *row.EntityID)
}

func TestCryptoUpdatePayerIsTarget(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())

	// Payer updates its own account; the outcome row must resolve to
	// the one shared entity id
	body := baseBody(100)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{AccountID: payerID}
	raw := buildFile(
		t,
		nil,
		buildEntry(t, body, baseRecord(100, hapi.StatusSuccess)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	row, err := p.db.GetTransaction(100_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.NotNil(t, row.EntityID)
	assert.Equal(t, row.PayerAccountID, *row.EntityID)
}

func TestCryptoDelete(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)
	before := createdEntitySnapshot(t, p)

	body := baseBody(200)
	body.CryptoDelete = &hapi.CryptoDeleteBody{
		DeleteAccountID:   createdID,
		TransferAccountID: payerID,
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusSuccess)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	// Only the deleted flag and modified timestamp change
	after := createdEntitySnapshot(t, p)
	assert.True(t, after.Deleted)
	assert.Equal(t, int64(200_000_000_000), after.ModifiedTimestamp)
	before.Deleted = true
	before.ModifiedTimestamp = after.ModifiedTimestamp
	assert.Equal(t, before, after)
}

func TestCryptoDeleteFailed(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)

	body := baseBody(200)
	body.CryptoDelete = &hapi.CryptoDeleteBody{DeleteAccountID: createdID}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusInvalidAccountID)),
	)
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	entity := createdEntitySnapshot(t, p)
	assert.False(t, entity.Deleted)
}

func TestCryptoUpdateAfterDeleteIgnored(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())
	prevHash := setupCreatedEntity(t, p)

	body := baseBody(200)
	body.CryptoDelete = &hapi.CryptoDeleteBody{
		DeleteAccountID:   createdID,
		TransferAccountID: payerID,
	}
	raw := buildFile(
		t,
		prevHash,
		buildEntry(t, body, baseRecord(200, hapi.StatusSuccess)),
	)
	rf, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)
	before := createdEntitySnapshot(t, p)

	// Delete is terminal: even a successful later update leaves the
	// entity at its final state
	newMemo := "resurrected"
	body = baseBody(300)
	body.CryptoUpdate = &hapi.CryptoUpdateBody{
		AccountID: createdID,
		Memo:      &newMemo,
	}
	raw = buildFile(
		t,
		rf.Hash,
		buildEntry(t, body, baseRecord(300, hapi.StatusSuccess)),
	)
	_, err = p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	after := createdEntitySnapshot(t, p)
	assert.Equal(t, before, after)
	assert.True(t, after.Deleted)
	assert.Equal(t, "new account", after.Memo)

	// The outcome row for the ignored update is still written
	row, err := p.db.GetTransaction(300_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.NotNil(t, row.EntityID)
	assert.Equal(t, int64(1001), *row.EntityID)
}

func TestCryptoTransferPersistsLines(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())

	body := baseBody(100)
	body.CryptoTransfer = &hapi.CryptoTransferBody{
		Transfers: []hapi.AccountAmount{
			{AccountID: payerID, Amount: -100},
			{AccountID: hapi.AccountID{Num: 50}, Amount: 100},
		},
	}
	rec := baseRecord(100, hapi.StatusSuccess)
	rec.Transfers = []hapi.AccountAmount{
		{AccountID: payerID, Amount: -110},
		{AccountID: hapi.AccountID{Num: 50}, Amount: 100},
		{AccountID: hapi.AccountID{Num: 98}, Amount: 10},
	}
	raw := buildFile(t, nil, buildEntry(t, body, rec))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	xfers, err := p.db.CryptoTransfers(100_000_000_000)
	require.NoError(t, err)
	assert.Len(t, xfers, 3)

	// Transfers never materialize entities on their own
	entityCount, err := p.db.EntityCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), entityCount)
}

func TestCryptoTransferFailedStillRecordsFees(t *testing.T) {
	p := newTestPipeline(t, defaultConfig())

	body := baseBody(100)
	body.CryptoTransfer = &hapi.CryptoTransferBody{
		Transfers: []hapi.AccountAmount{
			{AccountID: payerID, Amount: -100},
			{AccountID: hapi.AccountID{Num: 50}, Amount: 100},
		},
	}
	// Only the fee moved; the primary transfer failed
	rec := baseRecord(100, hapi.StatusInsufficientAccountBalance)
	rec.Transfers = []hapi.AccountAmount{
		{AccountID: payerID, Amount: -10},
		{AccountID: hapi.AccountID{Num: 98}, Amount: 10},
	}
	raw := buildFile(t, nil, buildEntry(t, body, rec))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	xfers, err := p.db.CryptoTransfers(100_000_000_000)
	require.NoError(t, err)
	assert.Len(t, xfers, 2)
}

func TestCryptoTransferPersistDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.PersistTransfers = false
	p := newTestPipeline(t, cfg)

	body := baseBody(100)
	body.CryptoTransfer = &hapi.CryptoTransferBody{}
	rec := baseRecord(100, hapi.StatusSuccess)
	rec.Transfers = []hapi.AccountAmount{
		{AccountID: payerID, Amount: -10},
		{AccountID: hapi.AccountID{Num: 98}, Amount: 10},
	}
	raw := buildFile(t, nil, buildEntry(t, body, rec))
	_, err := p.importer.ProcessFile(t.Context(), raw)
	require.NoError(t, err)

	count, err := p.db.CryptoTransferCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	// The outcome row is unaffected by the toggle
	row, err := p.db.GetTransaction(100_000_000_000)
	require.NoError(t, err)
	assert.NotNil(t, row)
}
