package invoices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func TestNextDate(t *testing.T) {
	d := date(2025, time.January, 15)
	assert.True(t, NextDate(d, model.RecurWeekly).SameDay(date(2025, time.January, 22)))
	assert.True(t, NextDate(d, model.RecurMonthly).SameDay(date(2025, time.February, 15)))
	assert.True(t, NextDate(d, model.RecurQuarterly).SameDay(date(2025, time.April, 15)))
	assert.True(t, NextDate(d, model.RecurYearly).SameDay(date(2026, time.January, 15)))
}

func newRecurringParent(svc *Service, freq model.RecurrenceFrequency, next model.Date) (*model.Invoice, error) {
	p := createParams()
	p.Recurrence = &model.Recurrence{Frequency: freq, NextDate: next, Active: true}
	return svc.Create(p, testNow)
}

func TestGenerateRecurring_ThreeMonthsBehind(t *testing.T) {
	svc, snap := newSvc()
	parent, err := newRecurringParent(svc, model.RecurMonthly, date(2025, time.March, 15))
	require.NoError(t, err)

	today := date(2025, time.June, 1)
	created := svc.GenerateRecurring(today, testNow)

	// Mar 15, Apr 15, May 15 are due; Jun 15 is not.
	require.Len(t, created, 3)
	assert.True(t, created[0].Date.SameDay(date(2025, time.March, 15)))
	assert.True(t, created[1].Date.SameDay(date(2025, time.April, 15)))
	assert.True(t, created[2].Date.SameDay(date(2025, time.May, 15)))

	parent = snap.FindInvoice(parent.ID)
	assert.True(t, parent.Recurrence.NextDate.SameDay(date(2025, time.June, 15)),
		"nextDate advances past today, got %s", parent.Recurrence.NextDate)

	// Second run with the same today generates nothing.
	assert.Empty(t, svc.GenerateRecurring(today, testNow))
}

func TestGenerateRecurring_ChildShape(t *testing.T) {
	svc, snap := newSvc()
	parent, err := newRecurringParent(svc, model.RecurMonthly, date(2025, time.May, 1))
	require.NoError(t, err)
	require.NoError(t, svc.MarkPaid(parent.ID, date(2025, time.May, 2)))

	created := svc.GenerateRecurring(date(2025, time.May, 10), testNow)
	require.Len(t, created, 1)
	child := snap.FindInvoice(created[0].ID)
	require.NotNil(t, child)

	// Term length comes from the parent's own date->due delta (14 days).
	assert.True(t, child.Date.SameDay(date(2025, time.May, 1)))
	assert.True(t, child.Due.SameDay(date(2025, time.May, 15)))
	assert.Equal(t, model.InvoiceUnpaid, child.Status)
	assert.Nil(t, child.Recurrence)
	assert.Empty(t, child.LinkedTransactionID, "payment link never carries over")
	assert.NotEqual(t, parent.ID, child.ID)
	assert.NotEqual(t, parent.Number, child.Number)
	assert.True(t, child.Amount.Equal(parent.Amount))
}

func TestGenerateRecurring_SkipsInactiveAndVoid(t *testing.T) {
	svc, snap := newSvc()

	inactive, err := newRecurringParent(svc, model.RecurMonthly, date(2025, time.January, 1))
	require.NoError(t, err)
	snap.FindInvoice(inactive.ID).Recurrence.Active = false

	voided, err := newRecurringParent(svc, model.RecurMonthly, date(2025, time.January, 1))
	require.NoError(t, err)
	require.NoError(t, svc.Void(voided.ID))

	assert.Empty(t, svc.GenerateRecurring(date(2025, time.June, 1), testNow))
}

func TestGenerateRecurring_FutureNextDate(t *testing.T) {
	svc, _ := newSvc()
	_, err := newRecurringParent(svc, model.RecurWeekly, date(2025, time.July, 1))
	require.NoError(t, err)

	assert.Empty(t, svc.GenerateRecurring(date(2025, time.June, 1), testNow))
}

func TestGenerateRecurring_UniqueNumbersWithinRun(t *testing.T) {
	svc, _ := newSvc()
	_, err := newRecurringParent(svc, model.RecurWeekly, date(2025, time.June, 1))
	require.NoError(t, err)

	created := svc.GenerateRecurring(date(2025, time.June, 15), testNow)
	require.Len(t, created, 3)

	seen := map[string]bool{}
	for _, inv := range created {
		assert.False(t, seen[inv.Number], "duplicate number %s", inv.Number)
		seen[inv.Number] = true
	}
}
