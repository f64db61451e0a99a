package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/config"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

func newInitCommand() *cobra.Command {
	var business string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerline project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, business)
		},
	}

	cmd.Flags().StringVar(&business, "business", "", "business name (required)")
	_ = cmd.MarkFlagRequired("business")

	return cmd
}

func runInit(cmd *cobra.Command, dir, business string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("project already exists at %s", dir)
	}

	cfg := config.Default(business)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	st, err := store.Open(filepath.Join(dir, cfg.Data.File))
	if err != nil {
		return err
	}
	st.Snap.Settings.BusinessName = business
	if err := st.Save(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	gitignore := "*-backup-*.json\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledgerline project at %s\n", dir)
	return nil
}
