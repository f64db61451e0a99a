package invoices

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline-dev/ledgerline/internal/docnum"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// NextDate advances a recurrence date by one period. Monthly, quarterly,
// and yearly steps use calendar arithmetic, so month-end dates roll over
// (Jan 31 + 1 month lands in early March). That matches the historical
// behavior and is kept for compatibility.
func NextDate(d model.Date, freq model.RecurrenceFrequency) model.Date {
	switch freq {
	case model.RecurWeekly:
		return d.AddDays(7)
	case model.RecurQuarterly:
		return d.AddMonths(3)
	case model.RecurYearly:
		return d.AddYears(1)
	default:
		return d.AddMonths(1)
	}
}

// GenerateRecurring runs the recurring-invoice generator once, as at load.
// For every active, non-void parent whose nextDate is due, it clones one
// child per elapsed period: dated at nextDate, due after the parent's own
// term length, status reset to unpaid, recurrence and payment link
// stripped. The parent's nextDate strictly advances past today, so the
// loop terminates and an immediate second run generates nothing.
func (s *Service) GenerateRecurring(today model.Date, now time.Time) []model.Invoice {
	var created []model.Invoice

	for i := range s.snap.Invoices {
		parent := &s.snap.Invoices[i]
		rec := parent.Recurrence
		if rec == nil || !rec.Active || parent.Status == model.InvoiceVoid {
			continue
		}
		if rec.NextDate.After(today.Time) {
			continue
		}

		termDays := parent.Due.DaysSince(parent.Date)

		for !rec.NextDate.After(today.Time) {
			child := *parent
			child.ID = uuid.NewString()
			child.Number = docnum.Generate(s.snap.Settings.InvoicePrefix, s.numbersWith(created), now)
			child.Date = rec.NextDate
			child.Due = rec.NextDate.AddDays(termDays)
			child.Status = model.InvoiceUnpaid
			child.Recurrence = nil
			child.LinkedTransactionID = ""
			child.Items = append([]model.LineItem(nil), parent.Items...)

			created = append(created, child)
			rec.NextDate = NextDate(rec.NextDate, rec.Frequency)
		}
	}

	s.snap.Invoices = append(s.snap.Invoices, created...)
	return created
}

// numbersWith merges stored invoice numbers with the numbers of invoices
// created earlier in the same generator run, so sequences stay unique
// before the batch is appended.
func (s *Service) numbersWith(pending []model.Invoice) []string {
	numbers := s.snap.InvoiceNumbers()
	for _, inv := range pending {
		numbers = append(numbers, inv.Number)
	}
	return numbers
}
