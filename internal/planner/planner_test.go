package planner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_Basic(t *testing.T) {
	// 100k income, 20k expenses, single filer, 15% rate:
	// profit 80000, SE 12240, taxable 65000, income tax 9750, total 21990.
	r := Calculate(Inputs{
		Mode:                 ModeBasic,
		Income:               dec("100000"),
		Expenses:             dec("20000"),
		FilingStatus:         FilingSingle,
		UseSelfEmployment:    true,
		UseStandardDeduction: true,
		TaxRate:              15,
	})

	assert.True(t, r.Profit.Equal(dec("80000")))
	assert.True(t, r.SelfEmploymentTax.Equal(dec("12240")), "got %s", r.SelfEmploymentTax)
	assert.True(t, r.Deduction.Equal(dec("15000")))
	assert.True(t, r.TaxableIncome.Equal(dec("65000")))
	assert.True(t, r.IncomeTax.Equal(dec("9750")))
	assert.True(t, r.TotalTax.Equal(dec("21990")))
	assert.True(t, r.QuarterlySuggestion.Equal(dec("5497.5")))
}

func TestCalculate_Basic_NoSE(t *testing.T) {
	r := Calculate(Inputs{
		Mode:     ModeBasic,
		Income:   dec("50000"),
		Expenses: dec("10000"),
		TaxRate:  10,
	})
	assert.True(t, r.SelfEmploymentTax.IsZero())
	assert.True(t, r.Deduction.IsZero(), "standard deduction off by default")
}

func TestCalculate_Basic_CreditsClampTotal(t *testing.T) {
	r := Calculate(Inputs{
		Mode:    ModeBasic,
		Income:  dec("10000"),
		TaxRate: 10,
		Credits: dec("99999"),
	})
	assert.True(t, r.TotalTax.IsZero(), "credits cannot drive tax negative")
}

func TestCalculate_Basic_LossClampsProfit(t *testing.T) {
	r := Calculate(Inputs{
		Mode:              ModeBasic,
		Income:            dec("5000"),
		Expenses:          dec("9000"),
		UseSelfEmployment: true,
		TaxRate:           15,
	})
	assert.True(t, r.Profit.IsZero())
	assert.True(t, r.SelfEmploymentTax.IsZero())
}

func TestStandardDeduction_SeparateFallsThroughToSingle(t *testing.T) {
	// "separate" has never had its own bracket; it resolves to single.
	assert.True(t, StandardDeduction(FilingSeparate).Equal(StandardDeduction(FilingSingle)))
	assert.True(t, StandardDeduction(FilingJoint).Equal(dec("30000")))
	assert.True(t, StandardDeduction(FilingHead).Equal(dec("22500")))
}

func TestCalculate_Advanced_OtherIncomeAndAdjustments(t *testing.T) {
	r := Calculate(Inputs{
		Mode:            ModeAdvanced,
		Income:          dec("100000"),
		Expenses:        dec("20000"),
		FilingStatus:    FilingSingle,
		TaxRate:         20,
		Interest:        dec("500"),
		Dividends:       dec("1500"),
		CapitalGains:    dec("2000"),
		OtherIncome:     dec("1000"),
		Retirement:      dec("6000"),
		HSA:             dec("3000"),
		HealthInsurance: dec("4000"),
	})

	// profit 80000 + other 5000 - adjustments 13000 - std ded 15000 = 57000
	assert.True(t, r.TaxableIncome.Equal(dec("57000")), "got %s", r.TaxableIncome)
	assert.True(t, r.IncomeTax.Equal(dec("11400")))
}

func TestCalculate_Advanced_Itemized(t *testing.T) {
	r := Calculate(Inputs{
		Mode:               ModeAdvanced,
		Income:             dec("100000"),
		FilingStatus:       FilingSingle,
		TaxRate:            20,
		Itemize:            true,
		ItemizedDeductions: dec("28000"),
	})
	assert.True(t, r.Deduction.Equal(dec("28000")))
	assert.True(t, r.TaxableIncome.Equal(dec("72000")))
}

func TestCalculate_Advanced_QBI(t *testing.T) {
	r := Calculate(Inputs{
		Mode:         ModeAdvanced,
		Income:       dec("100000"),
		Expenses:     dec("20000"),
		FilingStatus: FilingSingle,
		TaxRate:      20,
		ApplyQBI:     true,
	})
	// 20% of the 80000 profit.
	assert.True(t, r.QBIDeduction.Equal(dec("16000")))

	override := Calculate(Inputs{
		Mode:         ModeAdvanced,
		Income:       dec("100000"),
		Expenses:     dec("20000"),
		FilingStatus: FilingSingle,
		TaxRate:      20,
		ApplyQBI:     true,
		QBIOverride:  dec("50000"),
	})
	assert.True(t, override.QBIDeduction.Equal(dec("10000")), "override replaces profit as the QBI base")
}

func TestCalculate_Advanced_PaymentsAndQuarterly(t *testing.T) {
	in := Inputs{
		Mode:              ModeAdvanced,
		Income:            dec("100000"),
		Expenses:          dec("20000"),
		FilingStatus:      FilingSingle,
		UseSelfEmployment: true,
		TaxRate:           15,
		PaymentsYTD:       dec("5000"),
		WithholdingYTD:    dec("1000"),
	}
	r := Calculate(in)

	assert.True(t, r.PaidToDate.Equal(dec("6000")))
	assert.True(t, r.Remaining.Equal(r.TotalTax.Sub(dec("6000"))))
	assert.True(t, r.Ahead.IsZero())
	assert.True(t, r.QuarterlySuggestion.Equal(r.Remaining.Div(dec("4"))))

	// Overpay: remaining zero, quarterly suggestion zero, ahead positive.
	in.PaymentsYTD = dec("999999")
	r = Calculate(in)
	assert.True(t, r.Remaining.IsZero())
	assert.True(t, r.Ahead.IsPositive())
	assert.True(t, r.QuarterlySuggestion.IsZero())
	assert.True(t, decimal.Min(r.Remaining, r.Ahead).IsZero())
}
