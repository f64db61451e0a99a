package period

import (
	"fmt"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Period is a reporting granularity anchored at a reference date.
type Period string

const (
	All     Period = "all"
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Parse validates a period string.
func Parse(s string) (Period, error) {
	switch Period(s) {
	case All, Daily, Weekly, Monthly, Yearly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// WeekBounds returns the Monday-through-Sunday week containing ref.
func WeekBounds(ref model.Date) (start, end model.Date) {
	day := int(ref.Weekday())
	diff := day - 1
	if day == 0 { // Sunday belongs to the previous Monday's week
		diff = 6
	}
	start = ref.AddDays(-diff)
	return start, start.AddDays(6)
}

// Matches reports whether d falls inside the period anchored at ref.
func Matches(p Period, ref, d model.Date) bool {
	switch p {
	case Daily:
		return d.SameDay(ref)
	case Weekly:
		start, end := WeekBounds(ref)
		return !d.Before(start.Time) && !d.After(end.Time)
	case Monthly:
		return d.SameMonth(ref)
	case Yearly:
		return d.SameYear(ref)
	default:
		return true
	}
}

// Step moves the reference date by delta units of the period. Stepping an
// unbounded period is a no-op. Switching period types elsewhere never resets
// the reference date.
func Step(p Period, ref model.Date, delta int) model.Date {
	switch p {
	case Daily:
		return ref.AddDays(delta)
	case Weekly:
		return ref.AddDays(7 * delta)
	case Monthly:
		return ref.AddMonths(delta)
	case Yearly:
		return ref.AddYears(delta)
	default:
		return ref
	}
}

// FilterTransactions returns the transactions inside the period.
func FilterTransactions(txns []model.Transaction, p Period, ref model.Date) []model.Transaction {
	if p == All {
		return txns
	}
	var out []model.Transaction
	for _, t := range txns {
		if Matches(p, ref, t.Date) {
			out = append(out, t)
		}
	}
	return out
}
