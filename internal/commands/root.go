package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/buildinfo"
	"github.com/ledgerline-dev/ledgerline/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerline",
		Short:   "Small business finances: invoices, ledger, tax estimates",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return logger.Setup("info", "console")
		},
	}

	rootCmd.PersistentFlags().String("dir", ".", "project directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newInvoiceCommand())
	rootCmd.AddCommand(newEstimateCommand())
	rootCmd.AddCommand(newClientCommand())
	rootCmd.AddCommand(newTaxCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newLicenseCommand())

	return rootCmd
}
