package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/estimates"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func newEstimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Create and manage estimates",
	}
	cmd.AddCommand(newEstimateCreateCommand())
	cmd.AddCommand(newEstimateListCommand())
	cmd.AddCommand(estimateAction("send", "Mark an estimate sent and start its follow-up clock", func(p *project, id string) error {
		return p.estimates.MarkSent(id, now())
	}))
	cmd.AddCommand(estimateAction("accept", "Accept a sent estimate, promoting the client", func(p *project, id string) error {
		return p.estimates.Accept(id, now())
	}))
	cmd.AddCommand(estimateAction("decline", "Decline a sent estimate", func(p *project, id string) error {
		return p.estimates.Decline(id)
	}))
	cmd.AddCommand(estimateAction("void", "Void a draft or sent estimate", func(p *project, id string) error {
		return p.estimates.Void(id)
	}))
	cmd.AddCommand(newEstimateFollowUpCommand())
	cmd.AddCommand(newEstimateSnoozeCommand())
	cmd.AddCommand(newEstimateConvertCommand())
	return cmd
}

func estimateAction(use, short string, run func(p *project, id string) error) *cobra.Command {
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

func newEstimateCreateCommand() *cobra.Command {
	var (
		client, company, email, address string
		items                           []string
		date, validUntil                string
		discount, taxRate, shipping     float64
		notes, terms                    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new draft estimate",
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
			valid, err := parseDateFlag(validUntil, d.AddDays(30))
			if err != nil {
				return err
			}

			params := estimates.CreateParams{
				ClientName:    client,
				ClientCompany: company,
				ClientEmail:   email,
				ClientAddress: address,
				Date:          d,
				ValidUntil:    valid,
				Discount:      discount,
				TaxRate:       taxRate,
				Shipping:      shipping,
				Notes:         notes,
				Terms:         terms,
			}
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				params.Items = append(params.Items, item)
			}

			est, err := p.estimates.Create(params, now())
			if err != nil {
				return err
			}
			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s for %s: %s%s valid until %s\n",
				est.Number, est.ClientName, p.currency(), est.Amount.StringFixed(2), est.ValidUntil)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	cmd.Flags().StringVar(&company, "company", "", "client company")
	cmd.Flags().StringVar(&email, "email", "", "client email")
	cmd.Flags().StringVar(&address, "address", "", "client address")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as description:qty:rate (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "estimate date (default today)")
	cmd.Flags().StringVar(&validUntil, "valid-until", "", "expiry date (default date+30d)")
	cmd.Flags().Float64Var(&discount, "discount", 0, "flat discount")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0, "tax rate percent")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "shipping amount")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&terms, "terms", "", "terms")
	return cmd
}

func newEstimateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, est := range p.store.Snap.Estimates {
				followUp := ""
				if est.Status == model.EstimateSent && !est.FollowUpDate.IsZero() {
					followUp = fmt.Sprintf("  follow up %s (#%d)", est.FollowUpDate, est.FollowUpCount)
				}
				fmt.Fprintf(out, "%s  %-9s  %s%s  %-20s%s  [%s]\n",
					est.Number, est.Status, p.currency(), est.Amount.StringFixed(2), est.ClientName, followUp, est.ID)
			}
			return nil
		},
	}
}

func newEstimateFollowUpCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "follow-up <id>",
		Short: "Record a follow-up and schedule the next one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := p.estimates.RecordFollowUp(args[0], days, now()); err != nil {
				return err
			}
			return p.save()
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "days until the next follow-up")
	return cmd
}

func newEstimateSnoozeCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "snooze <id>",
		Short: "Push the follow-up date out without recording one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := p.estimates.SnoozeFollowUp(args[0], days); err != nil {
				return err
			}
			return p.save()
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "days to push the follow-up")
	return cmd
}

func newEstimateConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <id>",
		Short: "Convert an estimate into a new invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			inv, err := p.estimates.ConvertToInvoice(args[0], model.Today(), now())
			if err != nil {
				return err
			}
			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s%s due %s\n",
				inv.Number, p.currency(), inv.Amount.StringFixed(2), inv.Due)
			return nil
		},
	}
}
