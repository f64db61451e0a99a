package model

import "github.com/shopspring/decimal"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoid   InvoiceStatus = "void"
)

// LineItem is one billable row on an invoice or estimate.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Total returns quantity * rate.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

// RecurrenceFrequency is how often a recurring invoice regenerates.
type RecurrenceFrequency string

const (
	RecurWeekly    RecurrenceFrequency = "weekly"
	RecurMonthly   RecurrenceFrequency = "monthly"
	RecurQuarterly RecurrenceFrequency = "quarterly"
	RecurYearly    RecurrenceFrequency = "yearly"
)

// Recurrence schedules automatic regeneration of an invoice.
type Recurrence struct {
	Frequency RecurrenceFrequency `json:"frequency"`
	NextDate  Date                `json:"nextDate"`
	Active    bool                `json:"active"`
}

// Invoice is a billable document. Amount is always derived from the other
// financial fields via Recalculate; paid status always pairs with a linked
// income transaction of equal amount.
type Invoice struct {
	ID                  string          `json:"id"`
	Number              string          `json:"number"`
	ClientID            string          `json:"clientId,omitempty"`
	ClientName          string          `json:"client"`
	ClientCompany       string          `json:"clientCompany,omitempty"`
	ClientEmail         string          `json:"clientEmail,omitempty"`
	ClientAddress       string          `json:"clientAddress,omitempty"`
	Items               []LineItem      `json:"items"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	Discount            decimal.Decimal `json:"discount"`
	TaxRate             decimal.Decimal `json:"taxRate"`
	Shipping            decimal.Decimal `json:"shipping"`
	Amount              decimal.Decimal `json:"amount"`
	Date                Date            `json:"date"`
	Due                 Date            `json:"due"`
	Status              InvoiceStatus   `json:"status"`
	LinkedTransactionID string          `json:"linkedTransactionId,omitempty"`
	Recurrence          *Recurrence     `json:"recurrence,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	Terms               string          `json:"terms,omitempty"`
	PONumber            string          `json:"poNumber,omitempty"`
}

// ComputeTotal applies the document total formula:
// max(0, taxable + taxable*taxRate/100 + shipping) where taxable is
// subtotal minus discount.
func ComputeTotal(subtotal, discount, taxRate, shipping decimal.Decimal) decimal.Decimal {
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(taxRate).Div(decimal.NewFromInt(100))
	return decimal.Max(decimal.Zero, taxable.Add(tax).Add(shipping))
}

// Recalculate rederives Subtotal and Amount from the line items and the
// discount/tax/shipping fields.
func (inv *Invoice) Recalculate() {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Total())
	}
	inv.Subtotal = subtotal
	inv.Amount = ComputeTotal(subtotal, inv.Discount, inv.TaxRate, inv.Shipping)
}
