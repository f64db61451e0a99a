package model

import "github.com/shopspring/decimal"

// Receipt is a captured expense receipt. Image capture and compression
// happen outside the core; only the record round-trips in the snapshot.
type Receipt struct {
	ID                  string          `json:"id"`
	Date                Date            `json:"date"`
	Merchant            string          `json:"merchant,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Category            string          `json:"category,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	ImageRef            string          `json:"imageRef,omitempty"`
	LinkedTransactionID string          `json:"linkedTransactionId,omitempty"`
}
