package estimates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/clients"
	"github.com/ledgerline-dev/ledgerline/internal/invoices"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}

func newSvc() (*Service, *store.Snapshot) {
	snap := store.NewSnapshot()
	clientSvc := clients.NewService(snap)
	return NewService(snap, clientSvc, invoices.NewService(snap, clientSvc)), snap
}

func createParams() CreateParams {
	return CreateParams{
		ClientName: "Grace Hopper",
		Items:      []invoices.ItemParams{{Description: "Compiler audit", Quantity: 10, Rate: 120}},
		Date:       date(2025, time.June, 15),
		ValidUntil: date(2025, time.July, 15),
	}
}

func TestCreate(t *testing.T) {
	svc, snap := newSvc()

	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)

	assert.Equal(t, "EST-2506-0001", est.Number)
	assert.Equal(t, model.EstimateDraft, est.Status)
	assert.True(t, est.Amount.Equal(dec("1200")))

	// The referenced client starts as a lead.
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, model.ClientLead, snap.Clients[0].Status)
}

func TestCreate_Validation(t *testing.T) {
	svc, snap := newSvc()

	p := createParams()
	p.ClientName = ""
	_, err := svc.Create(p, testNow)
	require.Error(t, err)

	p = createParams()
	p.Items = nil
	_, err = svc.Create(p, testNow)
	require.Error(t, err)

	assert.Empty(t, snap.Estimates)
}

func TestMarkSent_StampsFollowUpSchedule(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)

	require.NoError(t, svc.MarkSent(est.ID, testNow))

	est = snap.FindEstimate(est.ID)
	assert.Equal(t, model.EstimateSent, est.Status)
	require.NotNil(t, est.SentAt)
	assert.True(t, est.FollowUpDate.SameDay(date(2025, time.June, 22)), "follow-up a week out")
	assert.Equal(t, 0, est.FollowUpCount)

	// Already sent: no second transition.
	assert.ErrorIs(t, svc.MarkSent(est.ID, testNow), ErrInvalidTransition)
}

func TestAccept_PromotesClient(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)

	// Accept straight from draft is rejected.
	assert.ErrorIs(t, svc.Accept(est.ID, testNow), ErrInvalidTransition)

	require.NoError(t, svc.MarkSent(est.ID, testNow))
	require.NoError(t, svc.Accept(est.ID, testNow))

	assert.Equal(t, model.EstimateAccepted, snap.FindEstimate(est.ID).Status)
	assert.Equal(t, model.ClientActive, snap.Clients[0].Status)
}

func TestDeclineAndVoid(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)

	require.NoError(t, svc.MarkSent(est.ID, testNow))
	require.NoError(t, svc.Decline(est.ID))
	assert.Equal(t, model.EstimateDeclined, snap.FindEstimate(est.ID).Status)

	// Declined cannot be voided.
	assert.ErrorIs(t, svc.Void(est.ID), ErrInvalidTransition)

	draft, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)
	require.NoError(t, svc.Void(draft.ID))
	assert.Equal(t, model.EstimateVoid, snap.FindEstimate(draft.ID).Status)
}

func TestRecordFollowUp(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)
	require.NoError(t, svc.MarkSent(est.ID, testNow))

	later := testNow.AddDate(0, 0, 8)
	require.NoError(t, svc.RecordFollowUp(est.ID, 0, later))

	est = snap.FindEstimate(est.ID)
	assert.Equal(t, 1, est.FollowUpCount)
	require.NotNil(t, est.LastFollowUp)
	assert.True(t, est.FollowUpDate.SameDay(date(2025, time.June, 30)), "default 7 days from now, got %s", est.FollowUpDate)

	require.NoError(t, svc.RecordFollowUp(est.ID, 14, later))
	assert.Equal(t, 2, snap.FindEstimate(est.ID).FollowUpCount)
}

func TestSnoozeFollowUp(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)
	require.NoError(t, svc.MarkSent(est.ID, testNow))

	before := snap.FindEstimate(est.ID)
	followUp := before.FollowUpDate
	lastFollowUp := before.LastFollowUp

	require.NoError(t, svc.SnoozeFollowUp(est.ID, 3))

	est = snap.FindEstimate(est.ID)
	assert.True(t, est.FollowUpDate.SameDay(followUp.AddDays(3)))
	assert.Equal(t, 0, est.FollowUpCount, "snooze does not count as a follow-up")
	assert.Equal(t, lastFollowUp, est.LastFollowUp)
}

func TestConvertToInvoice(t *testing.T) {
	svc, snap := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)
	require.NoError(t, svc.MarkSent(est.ID, testNow))

	today := date(2025, time.June, 20)
	inv, err := svc.ConvertToInvoice(est.ID, today, testNow)
	require.NoError(t, err)

	assert.Equal(t, "INV-2506-0001", inv.Number)
	assert.True(t, inv.Amount.Equal(est.Amount))
	assert.True(t, inv.Date.SameDay(today))
	assert.True(t, inv.Due.SameDay(today.AddDays(14)))
	assert.Equal(t, model.InvoiceUnpaid, inv.Status)

	est = snap.FindEstimate(est.ID)
	assert.Equal(t, model.EstimateAccepted, est.Status)
	assert.Equal(t, model.ClientActive, snap.Clients[0].Status)

	// Converting again is allowed (idempotent on status) and mints a new
	// invoice.
	second, err := svc.ConvertToInvoice(est.ID, today, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, inv.ID, second.ID)
	assert.Equal(t, model.EstimateAccepted, snap.FindEstimate(est.ID).Status)
}

func TestConvertToInvoice_RejectsDeclinedAndVoid(t *testing.T) {
	svc, _ := newSvc()
	est, err := svc.Create(createParams(), testNow)
	require.NoError(t, err)
	require.NoError(t, svc.MarkSent(est.ID, testNow))
	require.NoError(t, svc.Decline(est.ID))

	_, err = svc.ConvertToInvoice(est.ID, date(2025, time.June, 20), testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
