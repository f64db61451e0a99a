package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/clients"
	"github.com/ledgerline-dev/ledgerline/internal/config"
	"github.com/ledgerline-dev/ledgerline/internal/estimates"
	"github.com/ledgerline-dev/ledgerline/internal/invoices"
	"github.com/ledgerline-dev/ledgerline/internal/logger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// project bundles the loaded config, store, and services for one command
// invocation.
type project struct {
	dir       string
	cfg       *config.Config
	store     *store.Store
	clients   *clients.Service
	invoices  *invoices.Service
	estimates *estimates.Service
}

func projectDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

// openProject loads the project at the command's --dir. A corrupt snapshot
// falls back to defaults with a warning rather than aborting. The
// recurring-invoice generator runs once per load, matching the original
// on-load behavior.
func openProject(cmd *cobra.Command) (*project, error) {
	dir, err := projectDir(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("no project at %s (run ledgerline init): %w", dir, err)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, err
	}
	log := logger.WithComponent("store")

	st, err := store.Open(filepath.Join(dir, cfg.Data.File))
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		log.Warn().Err(err).Msg("snapshot unreadable; starting from defaults")
	}

	p := &project{dir: dir, cfg: cfg, store: st}
	p.clients = clients.NewService(st.Snap)
	p.invoices = invoices.NewService(st.Snap, p.clients)
	p.estimates = estimates.NewService(st.Snap, p.clients, p.invoices)

	if created := p.invoices.GenerateRecurring(model.Today(), now()); len(created) > 0 {
		rlog := logger.WithComponent("recurring")
		rlog.Info().
			Int("count", len(created)).
			Msg("generated recurring invoices")
		if err := st.Save(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *project) save() error {
	return p.store.Save()
}

func (p *project) currency() string {
	return p.store.Snap.Settings.CurrencySymbol
}

func now() time.Time {
	return time.Now()
}

// parseDateFlag parses a --date style flag, defaulting to fallback when
// empty.
func parseDateFlag(s string, fallback model.Date) (model.Date, error) {
	if s == "" {
		return fallback, nil
	}
	return model.ParseDate(s)
}

// confirm asks for explicit confirmation of a destructive operation. The
// --yes flag on the calling command bypasses the prompt.
func confirm(cmd *cobra.Command, message string) bool {
	if yes, err := cmd.Flags().GetBool("yes"); err == nil && yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", message)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	resp := strings.ToLower(strings.TrimSpace(line))
	return resp == "y" || resp == "yes"
}
