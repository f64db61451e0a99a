package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/period"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage ledger transactions",
	}
	cmd.AddCommand(newTxAddCommand())
	cmd.AddCommand(newTxListCommand())
	cmd.AddCommand(newTxDeleteCommand())
	return cmd
}

func newTxAddCommand() *cobra.Command {
	var (
		name     string
		amount   float64
		txType   string
		category string
		date     string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}
			if txType != string(model.TypeIncome) && txType != string(model.TypeExpense) {
				return fmt.Errorf("--type must be income or expense")
			}

			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			d, err := parseDateFlag(date, model.Today())
			if err != nil {
				return err
			}

			txn := model.Transaction{
				ID:       uuid.NewString(),
				Name:     name,
				Amount:   decimal.NewFromFloat(amount),
				Category: category,
				Date:     d,
				Type:     model.TransactionType(txType),
				Notes:    notes,
			}
			p.store.Snap.Transactions = append(p.store.Snap.Transactions, txn)
			p.store.Snap.AddCategory(category)

			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s%s (%s)\n", txType, p.currency(), txn.Amount.StringFixed(2), txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "entry description (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (required, positive)")
	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", "Other", "category")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func newTxListCommand() *cobra.Command {
	var (
		periodFlag string
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			per, err := period.Parse(periodFlag)
			if err != nil {
				return err
			}
			ref := period.Step(per, model.Today(), offset)

			out := cmd.OutOrStdout()
			for _, t := range period.FilterTransactions(p.store.Snap.Transactions, per, ref) {
				sign := "-"
				if t.Type == model.TypeIncome {
					sign = "+"
				}
				fmt.Fprintf(out, "%s  %s%s%s  %-10s  %s  [%s]\n",
					t.Date, sign, p.currency(), t.Amount.StringFixed(2), t.Category, t.Name, t.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "all", "all, daily, weekly, monthly, or yearly")
	cmd.Flags().IntVar(&offset, "offset", 0, "step the reference date by N periods")
	return cmd
}

func newTxDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if !confirm(cmd, "Delete transaction "+args[0]+"? This cannot be undone.") {
				return nil
			}
			if !p.store.Snap.RemoveTransaction(args[0]) {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			return p.save()
		},
	}
	cmd.Flags().Bool("yes", false, "skip confirmation")
	return cmd
}
