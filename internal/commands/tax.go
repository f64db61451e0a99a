package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/report"
)

func newTaxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Year-to-date tax estimate and payment log",
	}
	cmd.AddCommand(newTaxReportCommand())
	cmd.AddCommand(newTaxPayCommand())
	return cmd
}

func newTaxReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the year-to-date tax estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			snap := p.store.Snap
			ytd := report.BuildYearToDate(snap.Transactions, snap.TaxPayments, snap.Settings, model.Today())

			cur := p.currency()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tax estimate for %d\n\n", ytd.Year)
			fmt.Fprintf(out, "Income:           %s%s\n", cur, ytd.Income.StringFixed(2))
			fmt.Fprintf(out, "Expenses:         %s%s\n", cur, ytd.Expense.StringFixed(2))
			fmt.Fprintf(out, "Taxable profit:   %s%s\n\n", cur, ytd.TaxableProfit.StringFixed(2))
			fmt.Fprintf(out, "SE tax:           %s%s\n", cur, ytd.SelfEmploymentTax.StringFixed(2))
			fmt.Fprintf(out, "Income tax:       %s%s\n", cur, ytd.IncomeTax.StringFixed(2))
			fmt.Fprintf(out, "Total tax:        %s%s\n\n", cur, ytd.TotalTax.StringFixed(2))
			fmt.Fprintf(out, "Paid this year:   %s%s\n", cur, ytd.PaidToDate.StringFixed(2))
			if ytd.Ahead.IsPositive() {
				fmt.Fprintf(out, "Ahead by:         %s%s\n", cur, ytd.Ahead.StringFixed(2))
			} else {
				fmt.Fprintf(out, "Remaining:        %s%s\n", cur, ytd.Remaining.StringFixed(2))
			}
			fmt.Fprintf(out, "Expense shield:   %s%s\n", cur, ytd.TaxShield.StringFixed(2))
			fmt.Fprintf(out, "Next deadline:    %s\n", ytd.NextDeadline)
			return nil
		},
	}
}

func newTaxPayCommand() *cobra.Command {
	var (
		amount  float64
		date    string
		payType string
		note    string
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Log an estimated tax payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}
			t := model.TaxPaymentType(payType)
			switch t {
			case model.TaxPaymentEstimated, model.TaxPaymentAnnual, model.TaxPaymentOther:
			default:
				return fmt.Errorf("--type must be Estimated, Annual, or Other")
			}

			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			d, err := parseDateFlag(date, model.Today())
			if err != nil {
				return err
			}

			p.store.Snap.TaxPayments = append(p.store.Snap.TaxPayments, model.TaxPayment{
				ID:     uuid.NewString(),
				Date:   d,
				Amount: decimal.NewFromFloat(amount),
				Type:   t,
				Note:   note,
			})
			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s payment of %s%.2f\n", payType, p.currency(), amount)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "payment date (default today)")
	cmd.Flags().StringVar(&payType, "type", string(model.TaxPaymentEstimated), "Estimated, Annual, or Other")
	cmd.Flags().StringVar(&note, "note", "", "note")
	return cmd
}
