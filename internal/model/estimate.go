package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus is the lifecycle state of an estimate.
type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "draft"
	EstimateSent     EstimateStatus = "sent"
	EstimateAccepted EstimateStatus = "accepted"
	EstimateDeclined EstimateStatus = "declined"
	EstimateVoid     EstimateStatus = "void"
)

// Estimate is a quote document. It shares the invoice financial shape but
// has no payment linkage, uses validUntil instead of due, and carries
// follow-up scheduling state.
type Estimate struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	ClientID      string          `json:"clientId,omitempty"`
	ClientName    string          `json:"client"`
	ClientCompany string          `json:"clientCompany,omitempty"`
	ClientEmail   string          `json:"clientEmail,omitempty"`
	ClientAddress string          `json:"clientAddress,omitempty"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Shipping      decimal.Decimal `json:"shipping"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	ValidUntil    Date            `json:"validUntil"`
	Status        EstimateStatus  `json:"status"`
	SentAt        *time.Time      `json:"sentAt,omitempty"`
	FollowUpDate  Date            `json:"followUpDate"`
	FollowUpCount int             `json:"followUpCount"`
	LastFollowUp  *time.Time      `json:"lastFollowUp,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Terms         string          `json:"terms,omitempty"`
}

// Recalculate rederives Subtotal and Amount from the line items.
func (e *Estimate) Recalculate() {
	subtotal := decimal.Zero
	for _, item := range e.Items {
		subtotal = subtotal.Add(item.Total())
	}
	e.Subtotal = subtotal
	e.Amount = ComputeTotal(subtotal, e.Discount, e.TaxRate, e.Shipping)
}
