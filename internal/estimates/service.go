package estimates

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/clients"
	"github.com/ledgerline-dev/ledgerline/internal/docnum"
	"github.com/ledgerline-dev/ledgerline/internal/invoices"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// Default follow-up cadence and invoice terms when converting.
const (
	defaultFollowUpDays  = 7
	convertedInvoiceDays = 14
)

// Service provides estimate creation, the draft/sent/accepted/declined
// lifecycle, follow-up scheduling, and conversion to invoices.
type Service struct {
	snap     *store.Snapshot
	clients  *clients.Service
	invoices *invoices.Service
	validate *validator.Validate
}

// NewService creates an estimate Service.
func NewService(snap *store.Snapshot, clientSvc *clients.Service, invoiceSvc *invoices.Service) *Service {
	return &Service{
		snap:     snap,
		clients:  clientSvc,
		invoices: invoiceSvc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateParams holds the fields for a new estimate.
type CreateParams struct {
	ClientID      string
	ClientName    string `validate:"required"`
	ClientCompany string
	ClientEmail   string `validate:"omitempty,email"`
	ClientAddress string
	Items         []invoices.ItemParams `validate:"min=1,dive"`
	Date          model.Date
	ValidUntil    model.Date
	Discount      float64 `validate:"gte=0"`
	TaxRate       float64 `validate:"gte=0"`
	Shipping      float64 `validate:"gte=0"`
	Notes         string
	Terms         string
}

// Create validates params and appends a draft estimate. The referenced
// client is upserted as a lead; acceptance later promotes it.
func (s *Service) Create(p CreateParams, now time.Time) (*model.Estimate, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid estimate: %w", err)
	}

	clientID := s.clients.UpsertFromDoc(clients.DocFields{
		ClientID: p.ClientID,
		Name:     p.ClientName,
		Company:  p.ClientCompany,
		Email:    p.ClientEmail,
		Address:  p.ClientAddress,
	}, model.ClientLead, now)

	items := make([]model.LineItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = model.LineItem{
			Description: it.Description,
			Quantity:    decimal.NewFromFloat(it.Quantity),
			Rate:        decimal.NewFromFloat(it.Rate),
		}
	}

	est := model.Estimate{
		ID:            uuid.NewString(),
		Number:        docnum.Generate(s.snap.Settings.EstimatePrefix, s.snap.EstimateNumbers(), now),
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
		ValidUntil:    p.ValidUntil,
		Status:        model.EstimateDraft,
		Notes:         p.Notes,
		Terms:         p.Terms,
	}
	est.Recalculate()

	s.snap.Estimates = append(s.snap.Estimates, est)
	return s.snap.FindEstimate(est.ID), nil
}

// MarkSent transitions draft -> sent and stamps the follow-up schedule.
// Only the first send stamps sentAt.
func (s *Service) MarkSent(id string, now time.Time) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateDraft {
		return fmt.Errorf("%w: %s -> sent", ErrInvalidTransition, est.Status)
	}

	est.Status = model.EstimateSent
	if est.SentAt == nil {
		sent := now
		est.SentAt = &sent
		est.FollowUpDate = model.DateOf(now).AddDays(defaultFollowUpDays)
		est.FollowUpCount = 0
	}
	return nil
}

// Accept transitions sent -> accepted and promotes the linked client from
// lead to client.
func (s *Service) Accept(id string, now time.Time) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateSent {
		return fmt.Errorf("%w: %s -> accepted", ErrInvalidTransition, est.Status)
	}
	est.Status = model.EstimateAccepted
	s.clients.Promote(est.ClientID, now)
	return nil
}

// Decline transitions sent -> declined.
func (s *Service) Decline(id string) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateSent {
		return fmt.Errorf("%w: %s -> declined", ErrInvalidTransition, est.Status)
	}
	est.Status = model.EstimateDeclined
	return nil
}

// Void marks a draft or sent estimate void. Terminal.
func (s *Service) Void(id string) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateDraft && est.Status != model.EstimateSent {
		return fmt.Errorf("%w: %s -> void", ErrInvalidTransition, est.Status)
	}
	est.Status = model.EstimateVoid
	return nil
}

// RecordFollowUp logs a follow-up on a sent estimate: advances the
// follow-up date days from now (7 if days <= 0), increments the count, and
// stamps lastFollowUp.
func (s *Service) RecordFollowUp(id string, days int, now time.Time) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateSent {
		return fmt.Errorf("%w: follow-up on %s estimate", ErrInvalidTransition, est.Status)
	}
	if days <= 0 {
		days = defaultFollowUpDays
	}
	last := now
	est.FollowUpDate = model.DateOf(now).AddDays(days)
	est.FollowUpCount++
	est.LastFollowUp = &last
	return nil
}

// SnoozeFollowUp pushes the follow-up date forward without touching the
// count or lastFollowUp.
func (s *Service) SnoozeFollowUp(id string, days int) error {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return ErrNotFound
	}
	if est.Status != model.EstimateSent {
		return fmt.Errorf("%w: snooze on %s estimate", ErrInvalidTransition, est.Status)
	}
	if days <= 0 {
		days = defaultFollowUpDays
	}
	est.FollowUpDate = est.FollowUpDate.AddDays(days)
	return nil
}

// ConvertToInvoice creates a new invoice from an estimate, copying the
// items and financial fields, with due two weeks out. The estimate ends up
// accepted (idempotent if it already was) and the client is promoted.
// Declined and void estimates cannot convert.
func (s *Service) ConvertToInvoice(id string, today model.Date, now time.Time) (*model.Invoice, error) {
	est := s.snap.FindEstimate(id)
	if est == nil {
		return nil, ErrNotFound
	}
	if est.Status == model.EstimateDeclined || est.Status == model.EstimateVoid {
		return nil, fmt.Errorf("%w: convert %s estimate", ErrInvalidTransition, est.Status)
	}

	items := make([]invoices.ItemParams, len(est.Items))
	for i, it := range est.Items {
		items[i] = invoices.ItemParams{
			Description: it.Description,
			Quantity:    it.Quantity.InexactFloat64(),
			Rate:        it.Rate.InexactFloat64(),
		}
	}

	inv, err := s.invoices.Create(invoices.CreateParams{
		ClientID:      est.ClientID,
		ClientName:    est.ClientName,
		ClientCompany: est.ClientCompany,
		ClientEmail:   est.ClientEmail,
		ClientAddress: est.ClientAddress,
		Items:         items,
		Date:          today,
		Due:           today.AddDays(convertedInvoiceDays),
		Discount:      est.Discount.InexactFloat64(),
		TaxRate:       est.TaxRate.InexactFloat64(),
		Shipping:      est.Shipping.InexactFloat64(),
		Notes:         est.Notes,
		Terms:         est.Terms,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("converting estimate %s: %w", est.Number, err)
	}

	est.Status = model.EstimateAccepted
	s.clients.Promote(est.ClientID, now)
	return inv, nil
}
