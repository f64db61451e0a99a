package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func TestBuildYearToDate(t *testing.T) {
	today := date(2025, time.July, 1)
	settings := model.Settings{TaxRate: 15, StateTaxRate: 5}

	txns := []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("50000"), Date: date(2025, time.March, 1)},
		{Type: model.TypeExpense, Amount: dec("10000"), Date: date(2025, time.April, 1)},
		// Prior-year entries are excluded.
		{Type: model.TypeIncome, Amount: dec("90000"), Date: date(2024, time.December, 1)},
	}
	payments := []model.TaxPayment{
		{Amount: dec("2000"), Date: date(2025, time.April, 15)},
		{Amount: dec("1000"), Date: date(2024, time.June, 15)}, // prior year
	}

	ytd := BuildYearToDate(txns, payments, settings, today)

	assert.Equal(t, 2025, ytd.Year)
	assert.True(t, ytd.TaxableProfit.Equal(dec("40000")))
	// 40000 * 0.9235 * 0.153 = 5651.82
	assert.True(t, ytd.SelfEmploymentTax.Equal(dec("5651.82")), "got %s", ytd.SelfEmploymentTax)
	// 40000 * 20% = 8000
	assert.True(t, ytd.IncomeTax.Equal(dec("8000")))
	assert.True(t, ytd.TotalTax.Equal(dec("13651.82")))
	assert.True(t, ytd.PaidToDate.Equal(dec("2000")))
	assert.True(t, ytd.Remaining.Equal(dec("11651.82")))
	assert.True(t, ytd.Ahead.IsZero())
	// 10000 * (0.153 + 0.20) = 3530
	assert.True(t, ytd.TaxShield.Equal(dec("3530")), "got %s", ytd.TaxShield)
}

func TestBuildYearToDate_LossYear(t *testing.T) {
	today := date(2025, time.July, 1)
	txns := []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("1000"), Date: date(2025, time.March, 1)},
		{Type: model.TypeExpense, Amount: dec("5000"), Date: date(2025, time.April, 1)},
	}

	ytd := BuildYearToDate(txns, nil, model.Settings{TaxRate: 15}, today)

	assert.True(t, ytd.TaxableProfit.IsZero(), "losses clamp to zero taxable profit")
	assert.True(t, ytd.TotalTax.IsZero())
	assert.True(t, ytd.Remaining.IsZero())
}

func TestBuildYearToDate_Overpaid(t *testing.T) {
	today := date(2025, time.July, 1)
	txns := []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("10000"), Date: date(2025, time.March, 1)},
	}
	payments := []model.TaxPayment{
		{Amount: dec("50000"), Date: date(2025, time.April, 15)},
	}

	ytd := BuildYearToDate(txns, payments, model.Settings{TaxRate: 10}, today)

	assert.True(t, ytd.Remaining.IsZero())
	assert.True(t, ytd.Ahead.IsPositive())
	// Remaining and Ahead are mutually exclusive.
	assert.True(t, decimal.Min(ytd.Remaining, ytd.Ahead).IsZero())
}

func TestNextQuarterlyDeadline(t *testing.T) {
	cases := []struct {
		today model.Date
		want  model.Date
	}{
		{date(2025, time.February, 1), date(2025, time.April, 15)},
		{date(2025, time.April, 15), date(2025, time.April, 15)}, // on the day still qualifies
		{date(2025, time.May, 1), date(2025, time.June, 15)},
		{date(2025, time.August, 1), date(2025, time.September, 15)},
		{date(2025, time.October, 1), date(2026, time.January, 15)},
		{date(2025, time.December, 31), date(2026, time.January, 15)},
	}
	for _, tc := range cases {
		got := NextQuarterlyDeadline(tc.today)
		assert.True(t, got.SameDay(tc.want), "today %s: got %s, want %s", tc.today, got, tc.want)
	}
}
