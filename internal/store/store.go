package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// ErrCorrupt marks a snapshot file that exists but cannot be decoded.
// Callers fall back to defaults without touching the file until the next
// save.
var ErrCorrupt = errors.New("corrupt snapshot")

// Snapshot is the persisted document: every collection plus settings, in
// the exact JSON shape written to disk. Missing top-level keys default to
// empty collections on load.
type Snapshot struct {
	Transactions     []model.Transaction `json:"transactions"`
	Invoices         []model.Invoice     `json:"invoices"`
	Estimates        []model.Estimate    `json:"estimates"`
	Clients          []model.Client      `json:"clients"`
	Settings         model.Settings      `json:"settings"`
	TaxPayments      []model.TaxPayment  `json:"taxPayments"`
	CustomCategories []string            `json:"customCategories"`
	Receipts         []model.Receipt     `json:"receipts"`
}

// NewSnapshot returns an empty snapshot with default settings.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Transactions:     []model.Transaction{},
		Invoices:         []model.Invoice{},
		Estimates:        []model.Estimate{},
		Clients:          []model.Client{},
		Settings:         model.DefaultSettings(),
		TaxPayments:      []model.TaxPayment{},
		CustomCategories: []string{},
		Receipts:         []model.Receipt{},
	}
}

// Store owns the snapshot and its file path. The CLI is single-threaded, so
// mutations happen in place and Save rewrites the whole document,
// last-write-wins.
type Store struct {
	path string
	Snap *Snapshot
}

// Open loads the snapshot at path. A missing file yields a fresh default
// snapshot; an unreadable one returns ErrCorrupt (wrapped) alongside a
// usable default snapshot so the caller can decide whether to proceed.
func Open(path string) (*Store, error) {
	s := &Store{path: path, Snap: NewSnapshot()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading snapshot: %w", err)
	}

	// Decoding over the default-initialized snapshot deep-merges settings:
	// fields absent from older files keep their defaults.
	if err := json.Unmarshal(data, s.Snap); err != nil {
		s.Snap = NewSnapshot()
		return s, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the full snapshot back to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.Snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Replace swaps in a whole new snapshot (backup import).
func (s *Store) Replace(snap *Snapshot) {
	s.Snap = snap
	s.normalize()
}

func (s *Store) normalize() {
	snap := s.Snap
	if snap.Transactions == nil {
		snap.Transactions = []model.Transaction{}
	}
	if snap.Invoices == nil {
		snap.Invoices = []model.Invoice{}
	}
	if snap.Estimates == nil {
		snap.Estimates = []model.Estimate{}
	}
	if snap.Clients == nil {
		snap.Clients = []model.Client{}
	}
	if snap.TaxPayments == nil {
		snap.TaxPayments = []model.TaxPayment{}
	}
	if snap.CustomCategories == nil {
		snap.CustomCategories = []string{}
	}
	if snap.Receipts == nil {
		snap.Receipts = []model.Receipt{}
	}
}

// FindTransaction returns a pointer into the transactions slice, or nil.
func (s *Snapshot) FindTransaction(id string) *model.Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// RemoveTransaction deletes a transaction by id. Reports whether it existed.
func (s *Snapshot) RemoveTransaction(id string) bool {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			s.Transactions = append(s.Transactions[:i], s.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// FindInvoice returns a pointer into the invoices slice, or nil.
func (s *Snapshot) FindInvoice(id string) *model.Invoice {
	for i := range s.Invoices {
		if s.Invoices[i].ID == id {
			return &s.Invoices[i]
		}
	}
	return nil
}

// RemoveInvoice deletes an invoice by id. Reports whether it existed.
func (s *Snapshot) RemoveInvoice(id string) bool {
	for i := range s.Invoices {
		if s.Invoices[i].ID == id {
			s.Invoices = append(s.Invoices[:i], s.Invoices[i+1:]...)
			return true
		}
	}
	return false
}

// FindEstimate returns a pointer into the estimates slice, or nil.
func (s *Snapshot) FindEstimate(id string) *model.Estimate {
	for i := range s.Estimates {
		if s.Estimates[i].ID == id {
			return &s.Estimates[i]
		}
	}
	return nil
}

// RemoveEstimate deletes an estimate by id. Reports whether it existed.
func (s *Snapshot) RemoveEstimate(id string) bool {
	for i := range s.Estimates {
		if s.Estimates[i].ID == id {
			s.Estimates = append(s.Estimates[:i], s.Estimates[i+1:]...)
			return true
		}
	}
	return false
}

// FindClient returns a pointer into the clients slice, or nil.
func (s *Snapshot) FindClient(id string) *model.Client {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return &s.Clients[i]
		}
	}
	return nil
}

// InvoiceNumbers returns every invoice number, for sequence generation.
func (s *Snapshot) InvoiceNumbers() []string {
	out := make([]string, len(s.Invoices))
	for i, inv := range s.Invoices {
		out[i] = inv.Number
	}
	return out
}

// EstimateNumbers returns every estimate number.
func (s *Snapshot) EstimateNumbers() []string {
	out := make([]string, len(s.Estimates))
	for i, e := range s.Estimates {
		out[i] = e.Number
	}
	return out
}

// AddCategory records a custom category if it is neither built in nor
// already recorded.
func (s *Snapshot) AddCategory(category string) {
	if category == "" {
		return
	}
	for _, c := range model.DefaultCategories {
		if c == category {
			return
		}
	}
	for _, c := range s.CustomCategories {
		if c == category {
			return
		}
	}
	s.CustomCategories = append(s.CustomCategories, category)
}
