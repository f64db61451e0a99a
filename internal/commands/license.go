package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/config"
	"github.com/ledgerline-dev/ledgerline/internal/license"
)

func newLicenseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Activate and inspect the license",
	}
	cmd.AddCommand(newLicenseActivateCommand())
	cmd.AddCommand(newLicenseStatusCommand())
	return cmd
}

func newLicenseActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <key>",
		Short: "Validate a license key and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}

			client := license.NewClient(p.cfg.License.Endpoint)
			result, err := client.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p.cfg.License.Key = args[0]
			p.cfg.License.Email = result.Email
			if err := config.Save(filepath.Join(p.dir, config.FileName), p.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "License activated for %s\n", result.Email)
			return nil
		},
	}
}

func newLicenseStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored license",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd)
			if err != nil {
				return err
			}
			if p.cfg.License.Key == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No license activated")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Licensed to %s (%s)\n", p.cfg.License.Email, p.cfg.License.Key)
			return nil
		},
	}
}
