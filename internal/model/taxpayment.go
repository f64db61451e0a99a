package model

import "github.com/shopspring/decimal"

// TaxPaymentType classifies a logged tax payment.
type TaxPaymentType string

const (
	TaxPaymentEstimated TaxPaymentType = "Estimated"
	TaxPaymentAnnual    TaxPaymentType = "Annual"
	TaxPaymentOther     TaxPaymentType = "Other"
)

// TaxPayment is a user-logged payment against estimated tax liability.
// Purely additive; no derived state.
type TaxPayment struct {
	ID     string          `json:"id"`
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   TaxPaymentType  `json:"type"`
	Note   string          `json:"note,omitempty"`
}
