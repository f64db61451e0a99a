package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Self-employment tax applies to 92.35% of net profit at 15.3%
// (12.4% social security + 2.9% medicare), per the simplified flat-rate
// model this tracker encodes.
var (
	seTaxablePortion = decimal.NewFromFloat(0.9235)
	seTaxRate        = decimal.NewFromFloat(0.153)
	hundred          = decimal.NewFromInt(100)
)

// YearToDate is the tax position derived from the current year's ledger and
// logged tax payments. Remaining and Ahead are mutually exclusive; one is
// always zero.
type YearToDate struct {
	Year              int
	Income            decimal.Decimal
	Expense           decimal.Decimal
	TaxableProfit     decimal.Decimal
	SelfEmploymentTax decimal.Decimal
	IncomeTax         decimal.Decimal
	TotalTax          decimal.Decimal
	PaidToDate        decimal.Decimal
	Remaining         decimal.Decimal
	Ahead             decimal.Decimal
	TaxShield         decimal.Decimal
	NextDeadline      model.Date
}

// BuildYearToDate computes the year-to-date tax report for today's calendar
// year from all transactions and tax payments, using the configured federal
// and state rates.
func BuildYearToDate(txns []model.Transaction, payments []model.TaxPayment, settings model.Settings, today model.Date) YearToDate {
	year := today.Year()

	var ytdTxns []model.Transaction
	for _, t := range txns {
		if t.Date.Year() == year {
			ytdTxns = append(ytdTxns, t)
		}
	}
	totals := Summarize(ytdTxns)

	combinedRate := decimal.NewFromFloat(settings.TaxRate + settings.StateTaxRate).Div(hundred)

	taxableProfit := decimal.Max(decimal.Zero, totals.Profit)
	seTax := taxableProfit.Mul(seTaxablePortion).Mul(seTaxRate)
	incomeTax := taxableProfit.Mul(combinedRate)
	totalTax := seTax.Add(incomeTax)

	paid := decimal.Zero
	for _, p := range payments {
		if p.Date.Year() == year {
			paid = paid.Add(p.Amount)
		}
	}

	return YearToDate{
		Year:              year,
		Income:            totals.Income,
		Expense:           totals.Expense,
		TaxableProfit:     taxableProfit,
		SelfEmploymentTax: seTax,
		IncomeTax:         incomeTax,
		TotalTax:          totalTax,
		PaidToDate:        paid,
		Remaining:         decimal.Max(decimal.Zero, totalTax.Sub(paid)),
		Ahead:             decimal.Max(decimal.Zero, paid.Sub(totalTax)),
		TaxShield:         totals.Expense.Mul(seTaxRate.Add(combinedRate)),
		NextDeadline:      NextQuarterlyDeadline(today),
	}
}

// QuarterlyDeadlines returns the four estimated-payment due dates for a tax
// year: Apr 15, Jun 15, Sep 15, and Jan 15 of the following year.
func QuarterlyDeadlines(year int) []model.Date {
	return []model.Date{
		model.NewDate(year, time.April, 15),
		model.NewDate(year, time.June, 15),
		model.NewDate(year, time.September, 15),
		model.NewDate(year+1, time.January, 15),
	}
}

// NextQuarterlyDeadline returns the first deadline on or after today. The
// Jan 15 entry of the following year always qualifies, so the fallback to
// the first entry is unreachable in practice.
func NextQuarterlyDeadline(today model.Date) model.Date {
	deadlines := QuarterlyDeadlines(today.Year())
	for _, d := range deadlines {
		if !d.Before(today.Time) {
			return d
		}
	}
	return deadlines[0]
}
