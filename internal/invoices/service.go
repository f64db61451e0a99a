package invoices

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/clients"
	"github.com/ledgerline-dev/ledgerline/internal/docnum"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// Service provides invoice creation and the paid/void lifecycle.
type Service struct {
	snap     *store.Snapshot
	clients  *clients.Service
	validate *validator.Validate
}

// NewService creates an invoice Service.
func NewService(snap *store.Snapshot, clientSvc *clients.Service) *Service {
	return &Service{
		snap:     snap,
		clients:  clientSvc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ItemParams is one line item in a create request.
type ItemParams struct {
	Description string  `validate:"required"`
	Quantity    float64 `validate:"gt=0"`
	Rate        float64 `validate:"gt=0"`
}

// CreateParams holds the fields for a new invoice. Validation failures
// abort the operation before any state changes.
type CreateParams struct {
	ClientID      string
	ClientName    string `validate:"required"`
	ClientCompany string
	ClientEmail   string `validate:"omitempty,email"`
	ClientAddress string
	Items         []ItemParams `validate:"min=1,dive"`
	Date          model.Date
	Due           model.Date
	Discount      float64 `validate:"gte=0"`
	TaxRate       float64 `validate:"gte=0"`
	Shipping      float64 `validate:"gte=0"`
	Notes         string
	Terms         string
	PONumber      string
	Recurrence    *model.Recurrence
}

// Create validates params, generates the next document number, upserts the
// client, and appends the invoice with status unpaid.
func (s *Service) Create(p CreateParams, now time.Time) (*model.Invoice, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}

	clientID := s.clients.UpsertFromDoc(clients.DocFields{
		ClientID: p.ClientID,
		Name:     p.ClientName,
		Company:  p.ClientCompany,
		Email:    p.ClientEmail,
		Address:  p.ClientAddress,
	}, model.ClientActive, now)

	items := make([]model.LineItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = model.LineItem{
			Description: it.Description,
			Quantity:    decimal.NewFromFloat(it.Quantity),
			Rate:        decimal.NewFromFloat(it.Rate),
		}
	}

	inv := model.Invoice{
		ID:            uuid.NewString(),
		Number:        docnum.Generate(s.snap.Settings.InvoicePrefix, s.snap.InvoiceNumbers(), now),
		ClientID:      clientID,
		ClientName:    p.ClientName,
		ClientCompany: p.ClientCompany,
		ClientEmail:   p.ClientEmail,
		ClientAddress: p.ClientAddress,
		Items:         items,
		Discount:      decimal.NewFromFloat(p.Discount),
		TaxRate:       decimal.NewFromFloat(p.TaxRate),
		Shipping:      decimal.NewFromFloat(p.Shipping),
		Date:          p.Date,
		Due:           p.Due,
		Status:        model.InvoiceUnpaid,
		Notes:         p.Notes,
		Terms:         p.Terms,
		PONumber:      p.PONumber,
		Recurrence:    p.Recurrence,
	}
	inv.Recalculate()

	s.snap.Invoices = append(s.snap.Invoices, inv)
	return s.snap.FindInvoice(inv.ID), nil
}

// MarkPaid transitions unpaid -> paid, creating the linked income
// transaction for the invoice amount.
func (s *Service) MarkPaid(id string, today model.Date) error {
	inv := s.snap.FindInvoice(id)
	if inv == nil {
		return ErrNotFound
	}
	switch inv.Status {
	case model.InvoiceVoid:
		return ErrVoid
	case model.InvoicePaid:
		return ErrAlreadyPaid
	}

	txn := model.Transaction{
		ID:       uuid.NewString(),
		Name:     "Pmt: " + inv.ClientName,
		Amount:   inv.Amount,
		Category: "Client Payments",
		Date:     today,
		Type:     model.TypeIncome,
	}
	s.snap.Transactions = append(s.snap.Transactions, txn)

	inv.Status = model.InvoicePaid
	inv.LinkedTransactionID = txn.ID
	return nil
}

// UnmarkPaid reverts paid -> unpaid, deleting the linked transaction and
// clearing the link.
func (s *Service) UnmarkPaid(id string) error {
	inv := s.snap.FindInvoice(id)
	if inv == nil {
		return ErrNotFound
	}
	if inv.Status != model.InvoicePaid {
		return ErrNotPaid
	}

	if inv.LinkedTransactionID != "" {
		s.snap.RemoveTransaction(inv.LinkedTransactionID)
	}
	inv.Status = model.InvoiceUnpaid
	inv.LinkedTransactionID = ""
	return nil
}

// Void transitions unpaid -> void. Void is terminal.
func (s *Service) Void(id string) error {
	inv := s.snap.FindInvoice(id)
	if inv == nil {
		return ErrNotFound
	}
	switch inv.Status {
	case model.InvoiceVoid:
		return ErrVoid
	case model.InvoicePaid:
		return ErrPaid
	}
	inv.Status = model.InvoiceVoid
	return nil
}

// Delete removes an invoice. For a paid invoice the linked transaction is
// cascaded; the cascade is skipped for void invoices, which never carry a
// link.
func (s *Service) Delete(id string) error {
	inv := s.snap.FindInvoice(id)
	if inv == nil {
		return ErrNotFound
	}
	if inv.Status != model.InvoiceVoid && inv.LinkedTransactionID != "" {
		s.snap.RemoveTransaction(inv.LinkedTransactionID)
	}
	s.snap.RemoveInvoice(id)
	return nil
}
