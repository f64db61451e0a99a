package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

func TestFileName(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "ledgerline-backup-2025-06-15.json", FileName(now))
}

func TestExportImportRoundTrip(t *testing.T) {
	snap := store.NewSnapshot()
	snap.Settings.BusinessName = "Acme Design"
	snap.Transactions = append(snap.Transactions, model.Transaction{
		ID:     "t1",
		Name:   "Hosting",
		Amount: decimal.RequireFromString("12.50"),
		Date:   model.NewDate(2025, time.June, 1),
		Type:   model.TypeExpense,
	})
	snap.Clients = append(snap.Clients, model.Client{ID: "c1", Name: "Ada"})

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, snap, "1.2.3", time.Now()))

	got, err := Import(&buf, model.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.True(t, got.Transactions[0].Amount.Equal(decimal.RequireFromString("12.50")))
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Acme Design", got.Settings.BusinessName)
}

func TestImport_RejectsNonBackup(t *testing.T) {
	// A raw snapshot without the envelope is not importable.
	_, err := Import(strings.NewReader(`{"transactions": [], "settings": {}}`), model.DefaultSettings())
	assert.ErrorIs(t, err, ErrNotBackup)

	_, err = Import(strings.NewReader(`not json`), model.DefaultSettings())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotBackup)
}

func TestImport_CoercesBadCollections(t *testing.T) {
	in := `{
		"metadata": {"appName": "ledgerline", "version": "1.0.0", "timestamp": "2025-06-15T00:00:00Z"},
		"data": {
			"transactions": "nope",
			"invoices": 42,
			"clients": [{"id": "c1", "name": "Ada"}]
		}
	}`

	snap, err := Import(strings.NewReader(in), model.DefaultSettings())
	require.NoError(t, err)

	assert.Empty(t, snap.Transactions)
	assert.NotNil(t, snap.Transactions)
	assert.Empty(t, snap.Invoices)
	require.Len(t, snap.Clients, 1)
}

func TestImport_SettingsMergeOverCurrent(t *testing.T) {
	current := model.DefaultSettings()
	current.BusinessName = "Acme Design"
	current.TaxRate = 22

	in := `{
		"metadata": {"appName": "ledgerline", "version": "1.0.0", "timestamp": "2025-06-15T00:00:00Z"},
		"data": {"settings": {"taxRate": 30}}
	}`

	snap, err := Import(strings.NewReader(in), current)
	require.NoError(t, err)

	// Imported keys win, absent keys keep the current values.
	assert.Equal(t, 30.0, snap.Settings.TaxRate)
	assert.Equal(t, "Acme Design", snap.Settings.BusinessName)
}
