package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_master_backend/internal/platform/config"
	"github.com/SscSPs/budget_master_backend/internal/platform/logging"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var dbPath string

	root := &cobra.Command{
		Use:           "budget_master",
		Short:         "Manage a BudgetMaster ledger store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			a.cfg = cfg
			a.logger = logging.New(os.Stderr, cfg.LogLevel, cfg.IsProduction)
			slog.SetDefault(a.logger)

			ctx, _ := logging.WithRun(cmd.Context(), a.logger, cmd.Name())
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path of the SQLite data file (overrides DB_PATH)")

	root.AddCommand(
		newInitCmd(a),
		newRestoreDefaultsCmd(a),
		newStatsCmd(a),
		newAccountsCmd(a),
	)
	return root
}
