package report

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Totals is the income/expense/profit rollup for a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// Summarize sums transactions by type.
func Summarize(txns []model.Transaction) Totals {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			t.Income = t.Income.Add(txn.Amount)
		case model.TypeExpense:
			t.Expense = t.Expense.Add(txn.Amount)
		}
	}
	t.Profit = t.Income.Sub(t.Expense)
	return t
}

// InvoiceTotals is the receivables rollup for the dashboard.
type InvoiceTotals struct {
	PendingAmount decimal.Decimal
	OverdueAmount decimal.Decimal
	PendingCount  int
	OverdueCount  int
}

// DaysOverdue returns how many days past due a date is: zero when due is
// today, negative when due is in the future.
func DaysOverdue(due, today model.Date) int {
	return today.DaysSince(due)
}

// SummarizeInvoices totals unpaid invoices, splitting out the subset that is
// strictly past due. Void and paid invoices count toward nothing.
func SummarizeInvoices(invoices []model.Invoice, today model.Date) InvoiceTotals {
	t := InvoiceTotals{PendingAmount: decimal.Zero, OverdueAmount: decimal.Zero}
	for _, inv := range invoices {
		if inv.Status != model.InvoiceUnpaid {
			continue
		}
		t.PendingAmount = t.PendingAmount.Add(inv.Amount)
		t.PendingCount++
		if DaysOverdue(inv.Due, today) > 0 {
			t.OverdueAmount = t.OverdueAmount.Add(inv.Amount)
			t.OverdueCount++
		}
	}
	return t
}
