// Package export writes snapshot collections as CSV for spreadsheet
// handoff.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

const (
	txnNumFields = 6
	txnColDate   = 0
	txnColName   = 1
	txnColCat    = 2
	txnColType   = 3
	txnColAmount = 4
	txnColNotes  = 5
)

// WriteTransactions writes transactions as CSV, header included.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"date", "name", "category", "type", "amount", "notes"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		row := make([]string, txnNumFields)
		row[txnColDate] = t.Date.String()
		row[txnColName] = t.Name
		row[txnColCat] = t.Category
		row[txnColType] = string(t.Type)
		row[txnColAmount] = t.Amount.StringFixed(2)
		row[txnColNotes] = t.Notes
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteInvoices writes invoices as CSV, header included.
func WriteInvoices(w io.Writer, invoices []model.Invoice) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"number", "client", "date", "due", "status", "subtotal", "discount", "tax_rate", "shipping", "amount"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, inv := range invoices {
		row := []string{
			inv.Number,
			inv.ClientName,
			inv.Date.String(),
			inv.Due.String(),
			string(inv.Status),
			inv.Subtotal.StringFixed(2),
			inv.Discount.StringFixed(2),
			inv.TaxRate.String(),
			inv.Shipping.StringFixed(2),
			inv.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
