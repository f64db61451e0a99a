package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/export"
)

func newExportCommand() *cobra.Command {
	var (
		what string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions or invoices as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch what {
			case "transactions":
				return export.WriteTransactions(w, p.store.Snap.Transactions)
			case "invoices":
				return export.WriteInvoices(w, p.store.Snap.Invoices)
			default:
				return fmt.Errorf("--what must be transactions or invoices")
			}
		},
	}

	cmd.Flags().StringVar(&what, "what", "transactions", "transactions or invoices")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
