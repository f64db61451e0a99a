// Package planner is the interactive what-if variant of the year-to-date
// tax report: a pure function from user-editable inputs to tax figures,
// cheap enough to recompute on every field change.
package planner

import (
	"github.com/shopspring/decimal"
)

// FilingStatus selects the standard-deduction bracket.
type FilingStatus string

const (
	FilingSingle   FilingStatus = "single"
	FilingJoint    FilingStatus = "joint"
	FilingHead     FilingStatus = "head"
	FilingSeparate FilingStatus = "separate"
)

// Mode selects the basic or advanced planner surface.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
)

var (
	seTaxRate = decimal.NewFromFloat(0.153)
	qbiRate   = decimal.NewFromFloat(0.2)
	hundred   = decimal.NewFromInt(100)
	four      = decimal.NewFromInt(4)
)

// Plan-year standard deduction amounts by filing status.
var standardDeductions = map[FilingStatus]decimal.Decimal{
	FilingSingle: decimal.NewFromInt(15000),
	FilingJoint:  decimal.NewFromInt(30000),
	FilingHead:   decimal.NewFromInt(22500),
}

// StandardDeduction looks up the deduction for a filing status. "separate"
// has no bracket of its own and falls through to single; kept that way for
// compatibility with the historical behavior.
func StandardDeduction(fs FilingStatus) decimal.Decimal {
	if d, ok := standardDeductions[fs]; ok {
		return d
	}
	return standardDeductions[FilingSingle]
}

// Inputs is the editable planner state. Basic mode reads the first block
// only; advanced mode folds in the rest.
type Inputs struct {
	Mode Mode

	Income               decimal.Decimal
	Expenses             decimal.Decimal
	FilingStatus         FilingStatus
	UseSelfEmployment    bool
	UseStandardDeduction bool
	TaxRate              float64 // effective income tax rate, percent
	Retirement           decimal.Decimal
	Credits              decimal.Decimal

	// Advanced: other income
	Interest     decimal.Decimal
	Dividends    decimal.Decimal
	CapitalGains decimal.Decimal
	OtherIncome  decimal.Decimal

	// Advanced: adjustments (Retirement above also counts here)
	HSA             decimal.Decimal
	HealthInsurance decimal.Decimal

	// Advanced: deductions
	Itemize            bool
	ItemizedDeductions decimal.Decimal
	ApplyQBI           bool
	QBIOverride        decimal.Decimal

	// Advanced: payments to date
	PaymentsYTD    decimal.Decimal
	WithholdingYTD decimal.Decimal
}

// Results are the derived planner figures. Remaining and Ahead are mutually
// exclusive by construction.
type Results struct {
	Profit              decimal.Decimal
	SelfEmploymentTax   decimal.Decimal
	Deduction           decimal.Decimal
	QBIDeduction        decimal.Decimal
	TaxableIncome       decimal.Decimal
	IncomeTax           decimal.Decimal
	TotalTax            decimal.Decimal
	PaidToDate          decimal.Decimal
	Remaining           decimal.Decimal
	Ahead               decimal.Decimal
	QuarterlySuggestion decimal.Decimal
}

// Calculate derives planner results from inputs. Pure; no caching needed.
func Calculate(in Inputs) Results {
	if in.Mode == ModeAdvanced {
		return calculateAdvanced(in)
	}
	return calculateBasic(in)
}

func calculateBasic(in Inputs) Results {
	r := Results{}
	r.Profit = decimal.Max(decimal.Zero, in.Income.Sub(in.Expenses))

	if in.UseSelfEmployment {
		r.SelfEmploymentTax = r.Profit.Mul(seTaxRate)
	}
	if in.UseStandardDeduction {
		r.Deduction = StandardDeduction(in.FilingStatus)
	}

	r.TaxableIncome = decimal.Max(decimal.Zero, r.Profit.Sub(r.Deduction).Sub(in.Retirement))
	r.IncomeTax = r.TaxableIncome.Mul(decimal.NewFromFloat(in.TaxRate)).Div(hundred)
	r.TotalTax = decimal.Max(decimal.Zero, r.IncomeTax.Add(r.SelfEmploymentTax).Sub(in.Credits))
	r.QuarterlySuggestion = r.TotalTax.Div(four)
	return r
}

func calculateAdvanced(in Inputs) Results {
	r := Results{}
	r.Profit = decimal.Max(decimal.Zero, in.Income.Sub(in.Expenses))

	if in.UseSelfEmployment {
		r.SelfEmploymentTax = r.Profit.Mul(seTaxRate)
	}

	otherIncome := in.Interest.Add(in.Dividends).Add(in.CapitalGains).Add(in.OtherIncome)
	adjustments := in.Retirement.Add(in.HSA).Add(in.HealthInsurance)

	if in.Itemize {
		r.Deduction = in.ItemizedDeductions
	} else {
		r.Deduction = StandardDeduction(in.FilingStatus)
	}

	if in.ApplyQBI {
		base := r.Profit
		if in.QBIOverride.IsPositive() {
			base = in.QBIOverride
		}
		r.QBIDeduction = base.Mul(qbiRate)
	}

	totalIncome := r.Profit.Add(otherIncome)
	r.TaxableIncome = decimal.Max(decimal.Zero, totalIncome.Sub(adjustments).Sub(r.Deduction).Sub(r.QBIDeduction))
	r.IncomeTax = r.TaxableIncome.Mul(decimal.NewFromFloat(in.TaxRate)).Div(hundred)
	r.TotalTax = decimal.Max(decimal.Zero, r.IncomeTax.Add(r.SelfEmploymentTax).Sub(in.Credits))

	r.PaidToDate = in.PaymentsYTD.Add(in.WithholdingYTD)
	r.Remaining = decimal.Max(decimal.Zero, r.TotalTax.Sub(r.PaidToDate))
	r.Ahead = decimal.Max(decimal.Zero, r.PaidToDate.Sub(r.TotalTax))
	if r.Remaining.IsPositive() {
		r.QuarterlySuggestion = r.Remaining.Div(four)
	} else {
		r.QuarterlySuggestion = decimal.Zero
	}
	return r
}
