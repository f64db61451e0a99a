package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/backup"
	"github.com/ledgerline-dev/ledgerline/internal/buildinfo"
)

func newBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import full data backups",
	}
	cmd.AddCommand(newBackupExportCommand())
	cmd.AddCommand(newBackupImportCommand())
	return cmd
}

func newBackupExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data to a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			ts := now()
			if out == "" {
				out = filepath.Join(p.dir, backup.FileName(ts))
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating backup file: %w", err)
			}
			defer f.Close()

			if err := backup.Export(f, p.store.Snap, buildinfo.Version, ts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported backup to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default date-stamped name in the project dir)")
	return cmd
}

func newBackupImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup file: %w", err)
			}
			defer f.Close()

			// Validate before confirming so a malformed file aborts with
			// the current data untouched.
			snap, err := backup.Import(f, p.store.Snap.Settings)
			if err != nil {
				return err
			}
			if !confirm(cmd, "Replace ALL current data with this backup?") {
				return nil
			}

			p.store.Replace(snap)
			if err := p.save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backup imported")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip confirmation")
	return cmd
}
