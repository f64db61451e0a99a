package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func newClientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "View and manage clients",
	}
	cmd.AddCommand(newClientListCommand())
	cmd.AddCommand(newClientSetStatusCommand())
	return cmd
}

func newClientListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range p.store.Snap.Clients {
				company := ""
				if c.Company != "" {
					company = " (" + c.Company + ")"
				}
				fmt.Fprintf(out, "%-8s  %s%s  %s  [%s]\n", c.Status, c.Name, company, c.Email, c.ID)
			}
			return nil
		},
	}
}

func newClientSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <lead|client|inactive>",
		Short: "Explicitly set a client's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := model.ClientStatus(args[1])
			switch status {
			case model.ClientLead, model.ClientActive, model.ClientInactive:
			default:
				return fmt.Errorf("invalid status %q", args[1])
			}

			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if !p.clients.SetStatus(args[0], status, now()) {
				return fmt.Errorf("client %s not found", args[0])
			}
			return p.save()
		},
	}
}
