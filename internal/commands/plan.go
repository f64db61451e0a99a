package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/planner"
)

func newPlanCommand() *cobra.Command {
	var (
		advanced                    bool
		income, expenses            float64
		filing                      string
		useSE, useStdDed            bool
		taxRate                     float64
		retirement, credits         float64
		interest, dividends         float64
		capitalGains, otherIncome   float64
		hsa, health                 float64
		itemize                     bool
		itemized, qbiOverride       float64
		applyQBI                    bool
		paymentsYTD, withholdingYTD float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "What-if tax planner",
		Long:  "Estimates tax liability from editable inputs. Advanced mode adds other income, adjustments, itemized deductions, QBI, and payment tracking.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			mode := planner.ModeBasic
			if advanced {
				mode = planner.ModeAdvanced
			}
			in := planner.Inputs{
				Mode:                 mode,
				Income:               decimal.NewFromFloat(income),
				Expenses:             decimal.NewFromFloat(expenses),
				FilingStatus:         planner.FilingStatus(filing),
				UseSelfEmployment:    useSE,
				UseStandardDeduction: useStdDed,
				TaxRate:              taxRate,
				Retirement:           decimal.NewFromFloat(retirement),
				Credits:              decimal.NewFromFloat(credits),
				Interest:             decimal.NewFromFloat(interest),
				Dividends:            decimal.NewFromFloat(dividends),
				CapitalGains:         decimal.NewFromFloat(capitalGains),
				OtherIncome:          decimal.NewFromFloat(otherIncome),
				HSA:                  decimal.NewFromFloat(hsa),
				HealthInsurance:      decimal.NewFromFloat(health),
				Itemize:              itemize,
				ItemizedDeductions:   decimal.NewFromFloat(itemized),
				ApplyQBI:             applyQBI,
				QBIOverride:          decimal.NewFromFloat(qbiOverride),
				PaymentsYTD:          decimal.NewFromFloat(paymentsYTD),
				WithholdingYTD:       decimal.NewFromFloat(withholdingYTD),
			}
			r := planner.Calculate(in)

			cur := p.currency()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profit:           %s%s\n", cur, r.Profit.StringFixed(2))
			fmt.Fprintf(out, "SE tax:           %s%s\n", cur, r.SelfEmploymentTax.StringFixed(2))
			fmt.Fprintf(out, "Deduction:        %s%s\n", cur, r.Deduction.StringFixed(2))
			if advanced && r.QBIDeduction.IsPositive() {
				fmt.Fprintf(out, "QBI deduction:    %s%s\n", cur, r.QBIDeduction.StringFixed(2))
			}
			fmt.Fprintf(out, "Taxable income:   %s%s\n", cur, r.TaxableIncome.StringFixed(2))
			fmt.Fprintf(out, "Income tax:       %s%s\n", cur, r.IncomeTax.StringFixed(2))
			fmt.Fprintf(out, "Total tax:        %s%s\n", cur, r.TotalTax.StringFixed(2))
			if advanced {
				fmt.Fprintf(out, "Paid to date:     %s%s\n", cur, r.PaidToDate.StringFixed(2))
				if r.Ahead.IsPositive() {
					fmt.Fprintf(out, "Ahead by:         %s%s\n", cur, r.Ahead.StringFixed(2))
				} else {
					fmt.Fprintf(out, "Remaining:        %s%s\n", cur, r.Remaining.StringFixed(2))
				}
			}
			fmt.Fprintf(out, "Quarterly:        %s%s\n", cur, r.QuarterlySuggestion.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().BoolVar(&advanced, "advanced", false, "advanced mode")
	cmd.Flags().Float64Var(&income, "income", 0, "business income")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "business expenses")
	cmd.Flags().StringVar(&filing, "filing", "single", "single, joint, head, or separate")
	cmd.Flags().BoolVar(&useSE, "se", true, "include self-employment tax")
	cmd.Flags().BoolVar(&useStdDed, "std-ded", true, "apply the standard deduction (basic mode)")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 15, "effective income tax rate percent")
	cmd.Flags().Float64Var(&retirement, "retirement", 0, "retirement contributions")
	cmd.Flags().Float64Var(&credits, "credits", 0, "tax credits")
	cmd.Flags().Float64Var(&interest, "interest", 0, "interest income (advanced)")
	cmd.Flags().Float64Var(&dividends, "dividends", 0, "dividend income (advanced)")
	cmd.Flags().Float64Var(&capitalGains, "capital-gains", 0, "capital gains (advanced)")
	cmd.Flags().Float64Var(&otherIncome, "other-income", 0, "other income (advanced)")
	cmd.Flags().Float64Var(&hsa, "hsa", 0, "HSA contributions (advanced)")
	cmd.Flags().Float64Var(&health, "health", 0, "health insurance premiums (advanced)")
	cmd.Flags().BoolVar(&itemize, "itemize", false, "itemize instead of the standard deduction (advanced)")
	cmd.Flags().Float64Var(&itemized, "itemized", 0, "itemized deduction total (advanced)")
	cmd.Flags().BoolVar(&applyQBI, "qbi", false, "apply the 20% QBI deduction (advanced)")
	cmd.Flags().Float64Var(&qbiOverride, "qbi-override", 0, "QBI income override (advanced)")
	cmd.Flags().Float64Var(&paymentsYTD, "payments", 0, "estimated payments made this year (advanced)")
	cmd.Flags().Float64Var(&withholdingYTD, "withholding", 0, "withholding this year (advanced)")
	return cmd
}
