package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/invoices"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func newInvoiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Create and manage invoices",
	}
	cmd.AddCommand(newInvoiceCreateCommand())
	cmd.AddCommand(newInvoiceListCommand())
	cmd.AddCommand(newInvoiceShowCommand())
	cmd.AddCommand(newInvoiceMarkPaidCommand())
	cmd.AddCommand(newInvoiceUnmarkPaidCommand())
	cmd.AddCommand(newInvoiceVoidCommand())
	cmd.AddCommand(newInvoiceDeleteCommand())
	cmd.AddCommand(newInvoiceRecurCommand())
	return cmd
}

// parseItem parses "description:qty:rate". The description may itself
// contain colons, so quantity and rate split from the right.
func parseItem(s string) (invoices.ItemParams, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return invoices.ItemParams{}, fmt.Errorf("invalid item %q: want description:qty:rate", s)
	}
	rate, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return invoices.ItemParams{}, fmt.Errorf("invalid rate in item %q: %w", s, err)
	}
	rest := s[:i]
	j := strings.LastIndex(rest, ":")
	if j < 0 {
		return invoices.ItemParams{}, fmt.Errorf("invalid item %q: want description:qty:rate", s)
	}
	qty, err := strconv.ParseFloat(rest[j+1:], 64)
	if err != nil {
		return invoices.ItemParams{}, fmt.Errorf("invalid quantity in item %q: %w", s, err)
	}
	return invoices.ItemParams{Description: rest[:j], Quantity: qty, Rate: rate}, nil
}

func newInvoiceCreateCommand() *cobra.Command {
	var (
		client, company, email, address  string
		items                            []string
		date, due                        string
		discount, taxRate, shipping      float64
		notes, terms, po, recurFrequency string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			today := model.Today()
			d, err := parseDateFlag(date, today)
			if err != nil {
				return err
			}
			dueDate, err := parseDateFlag(due, d.AddDays(14))
			if err != nil {
				return err
			}

			params := invoices.CreateParams{
				ClientName:    client,
				ClientCompany: company,
				ClientEmail:   email,
				ClientAddress: address,
				Date:          d,
				Due:           dueDate,
				Discount:      discount,
				TaxRate:       taxRate,
				Shipping:      shipping,
				Notes:         notes,
				Terms:         terms,
				PONumber:      po,
			}
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				params.Items = append(params.Items, item)
			}
			if recurFrequency != "" {
				freq := model.RecurrenceFrequency(recurFrequency)
				switch freq {
				case model.RecurWeekly, model.RecurMonthly, model.RecurQuarterly, model.RecurYearly:
				default:
					return fmt.Errorf("invalid recurrence %q", recurFrequency)
				}
				params.Recurrence = &model.Recurrence{
					Frequency: freq,
					NextDate:  invoices.NextDate(d, freq),
					Active:    true,
				}
			}

			inv, err := p.invoices.Create(params, now())
			if err != nil {
				return err
			}
			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s for %s: %s%s due %s\n",
				inv.Number, inv.ClientName, p.currency(), inv.Amount.StringFixed(2), inv.Due)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	cmd.Flags().StringVar(&company, "company", "", "client company")
	cmd.Flags().StringVar(&email, "email", "", "client email")
	cmd.Flags().StringVar(&address, "address", "", "client address")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as description:qty:rate (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "invoice date (default today)")
	cmd.Flags().StringVar(&due, "due", "", "due date (default date+14d)")
	cmd.Flags().Float64Var(&discount, "discount", 0, "flat discount")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0, "tax rate percent")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "shipping amount")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&terms, "terms", "", "payment terms")
	cmd.Flags().StringVar(&po, "po", "", "PO number")
	cmd.Flags().StringVar(&recurFrequency, "recur", "", "weekly, monthly, quarterly, or yearly")
	return cmd
}

func newInvoiceListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, inv := range p.store.Snap.Invoices {
				recur := ""
				if inv.Recurrence != nil && inv.Recurrence.Active {
					recur = fmt.Sprintf("  (recurs %s, next %s)", inv.Recurrence.Frequency, inv.Recurrence.NextDate)
				}
				fmt.Fprintf(out, "%s  %-8s  %s%s  %-20s  due %s%s  [%s]\n",
					inv.Number, inv.Status, p.currency(), inv.Amount.StringFixed(2), inv.ClientName, inv.Due, recur, inv.ID)
			}
			return nil
		},
	}
	return cmd
}

func newInvoiceShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one invoice in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			inv := p.store.Snap.FindInvoice(args[0])
			if inv == nil {
				return fmt.Errorf("invoice %s not found", args[0])
			}

			cur := p.currency()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  (%s)\n", inv.Number, inv.Status)
			fmt.Fprintf(out, "Client:   %s", inv.ClientName)
			if inv.ClientCompany != "" {
				fmt.Fprintf(out, " (%s)", inv.ClientCompany)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Date:     %s  due %s\n\n", inv.Date, inv.Due)
			for _, item := range inv.Items {
				fmt.Fprintf(out, "  %-30s  %s x %s%s = %s%s\n",
					item.Description, item.Quantity, cur, item.Rate.StringFixed(2), cur, item.Total().StringFixed(2))
			}
			fmt.Fprintf(out, "\nSubtotal: %s%s\n", cur, inv.Subtotal.StringFixed(2))
			if inv.Discount.IsPositive() {
				fmt.Fprintf(out, "Discount: -%s%s\n", cur, inv.Discount.StringFixed(2))
			}
			if inv.TaxRate.IsPositive() {
				fmt.Fprintf(out, "Tax:      %s%%\n", inv.TaxRate)
			}
			if inv.Shipping.IsPositive() {
				fmt.Fprintf(out, "Shipping: %s%s\n", cur, inv.Shipping.StringFixed(2))
			}
			fmt.Fprintf(out, "Total:    %s%s\n", cur, inv.Amount.StringFixed(2))
			if inv.Notes != "" {
				fmt.Fprintf(out, "\nNotes: %s\n", inv.Notes)
			}
			return nil
		},
	}
}

func invoiceAction(use, short string, run func(p *project, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := run(p, args[0]); err != nil {
				return err
			}
			return p.save()
		},
	}
}

func newInvoiceMarkPaidCommand() *cobra.Command {
	return invoiceAction("mark-paid", "Mark an invoice paid, recording the income entry", func(p *project, id string) error {
		return p.invoices.MarkPaid(id, model.Today())
	})
}

func newInvoiceUnmarkPaidCommand() *cobra.Command {
	return invoiceAction("unmark-paid", "Revert a paid invoice, removing its income entry", func(p *project, id string) error {
		return p.invoices.UnmarkPaid(id)
	})
}

func newInvoiceVoidCommand() *cobra.Command {
	return invoiceAction("void", "Void an unpaid invoice (terminal)", func(p *project, id string) error {
		return p.invoices.Void(id)
	})
}

func newInvoiceDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if !confirm(cmd, "Delete invoice "+args[0]+"? Its payment entry is removed too.") {
				return nil
			}
			if err := p.invoices.Delete(args[0]); err != nil {
				return err
			}
			return p.save()
		},
	}
	cmd.Flags().Bool("yes", false, "skip confirmation")
	return cmd
}

func newInvoiceRecurCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recur",
		Short: "Run the recurring invoice generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// openProject already runs the generator once per load; this
			// command exists to make the run explicit and report it.
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			created := p.invoices.GenerateRecurring(model.Today(), now())
			if len(created) > 0 {
				if err := p.save(); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d invoices\n", len(created))
			return nil
		},
	}
}
