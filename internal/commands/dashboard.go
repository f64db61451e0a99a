package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/report"
)

func newDashboardCommand() *cobra.Command {
	var (
		periodFlag string
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show income, expenses, profit, and receivables",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			per, err := period.Parse(periodFlag)
			if err != nil {
				return err
			}
			today := model.Today()
			ref := period.Step(per, today, offset)

			totals := report.Summarize(period.FilterTransactions(p.store.Snap.Transactions, per, ref))
			receivables := report.SummarizeInvoices(p.store.Snap.Invoices, today)

			cur := p.currency()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s | %s (%s)\n\n", p.store.Snap.Settings.BusinessName, periodFlag, ref)
			fmt.Fprintf(out, "Income:   %s%s\n", cur, totals.Income.StringFixed(2))
			fmt.Fprintf(out, "Expenses: %s%s\n", cur, totals.Expense.StringFixed(2))
			fmt.Fprintf(out, "Profit:   %s%s\n\n", cur, totals.Profit.StringFixed(2))
			fmt.Fprintf(out, "Pending:  %s%s (%d invoices)\n", cur, receivables.PendingAmount.StringFixed(2), receivables.PendingCount)
			fmt.Fprintf(out, "Overdue:  %s%s (%d invoices)\n", cur, receivables.OverdueAmount.StringFixed(2), receivables.OverdueCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "monthly", "all, daily, weekly, monthly, or yearly")
	cmd.Flags().IntVar(&offset, "offset", 0, "step the reference date by N periods")
	return cmd
}
