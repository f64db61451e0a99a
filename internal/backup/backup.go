package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// AppName identifies backups written by this program.
const AppName = "ledgerline"

// ErrNotBackup marks a file missing the metadata/data envelope. No other
// schema or version check is applied.
var ErrNotBackup = errors.New("not a ledgerline backup file")

// Metadata describes a backup file.
type Metadata struct {
	AppName   string    `json:"appName"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// File is the export envelope: metadata plus the full snapshot.
type File struct {
	Metadata Metadata       `json:"metadata"`
	Data     store.Snapshot `json:"data"`
}

// FileName returns the date-stamped backup filename for now.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s-backup-%s.json", AppName, now.Format("2006-01-02"))
}

// Export writes the snapshot wrapped in backup metadata.
func Export(w io.Writer, snap *store.Snapshot, version string, now time.Time) error {
	f := File{
		Metadata: Metadata{AppName: AppName, Version: version, Timestamp: now},
		Data:     *snap,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Import reads a backup file and returns the snapshot it carries. Only the
// presence of the metadata and data keys is validated; collections that are
// missing or not arrays coerce to empty, and settings shallow-merge over
// current. The caller replaces its snapshot wholesale on confirmation.
func Import(r io.Reader, current model.Settings) (*store.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var envelope struct {
		Metadata json.RawMessage `json:"metadata"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decoding backup: %w", err)
	}
	if envelope.Metadata == nil || envelope.Data == nil {
		return nil, ErrNotBackup
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("decoding backup data: %w", err)
	}

	snap := store.NewSnapshot()
	coerce(data["transactions"], &snap.Transactions)
	coerce(data["invoices"], &snap.Invoices)
	coerce(data["estimates"], &snap.Estimates)
	coerce(data["clients"], &snap.Clients)
	coerce(data["taxPayments"], &snap.TaxPayments)
	coerce(data["customCategories"], &snap.CustomCategories)
	coerce(data["receipts"], &snap.Receipts)

	snap.Settings = current
	if s, ok := data["settings"]; ok {
		// Shallow merge: imported keys overwrite, missing keys keep current.
		_ = json.Unmarshal(s, &snap.Settings)
	}
	return snap, nil
}

// coerce decodes into dst, leaving it untouched (empty) when the value is
// absent or not the expected array shape.
func coerce(raw json.RawMessage, dst any) {
	if raw == nil {
		return
	}
	_ = json.Unmarshal(raw, dst)
}
