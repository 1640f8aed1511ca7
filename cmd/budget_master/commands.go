package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/services"
	"github.com/SscSPs/budget_master_backend/internal/platform/bootstrap"
	"github.com/SscSPs/budget_master_backend/internal/platform/logging"
	"github.com/SscSPs/budget_master_backend/internal/repositories/database/sqldb"
	"github.com/SscSPs/budget_master_backend/internal/utils"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store and seed the default dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			created, err := bootstrap.CreateIfNotExists(ctx, a.cfg.Database())
			if err != nil {
				logging.FromContext(ctx).Error("Failed to create store", slog.String("error", err.Error()))
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "store created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "store already exists")
			}
			return nil
		},
	}
}

func newRestoreDefaultsCmd(a *app) *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "restore-defaults",
		Short: "Wipe the store and seed the defaults again",
		Long: "Wipe every table and seed the default dataset. With --only, seed a single " +
			"table and only if it is empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := database.Open(ctx, a.cfg.Database())
			if err != nil {
				return err
			}
			defer store.Close()

			var restore func() (bool, error)
			switch only {
			case "":
				if err := bootstrap.RestoreDefaults(ctx, store); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "defaults restored")
				return nil
			case database.TableCurrencies:
				restore = func() (bool, error) { return bootstrap.RestoreDefaultCurrencies(ctx, store) }
			case database.TableCategories:
				restore = func() (bool, error) { return bootstrap.RestoreDefaultCategories(ctx, store) }
			case database.TableAccounts:
				restore = func() (bool, error) { return bootstrap.RestoreDefaultAccounts(ctx, store) }
			default:
				return apperrors.NewInvalidInput("only", fmt.Sprintf("cannot restore %q", only))
			}

			seeded, err := restore()
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintf(cmd.OutOrStdout(), "%s restored\n", only)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s not empty, left untouched\n", only)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "restore one table: currencies, categories or accounts")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the row count of every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := database.Open(ctx, a.cfg.Database())
			if err != nil {
				return err
			}
			defer store.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, table := range database.Tables {
				n, err := store.GetTableRecordCount(ctx, table)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\n", table, n)
			}
			total, err := store.GetTotalRecordCount(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "total\t%d\n", total)
			return w.Flush()
		},
	}
}

func newAccountsCmd(a *app) *cobra.Command {
	var includeClosed bool
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the live accounts with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := database.Open(ctx, a.cfg.Database())
			if err != nil {
				return err
			}
			defer store.Close()

			svc, err := services.NewServiceContainer(sqldb.NewRepositoryProvider(store), a.cfg.User)
			if err != nil {
				return err
			}
			currencies, err := svc.Currency.GetAll(ctx)
			if err != nil {
				return err
			}
			titles := make(map[int64]string, len(currencies))
			for _, c := range currencies {
				titles[c.ID] = c.Title
			}
			accounts, err := svc.Account.GetAllLive(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "#\ttitle\tbalance\tcurrency\t")
			for _, acc := range accounts {
				if acc.IsClosed() && !includeClosed {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
					acc.Position,
					acc.Title,
					utils.FormatMinorUnits(acc.Amount, utils.DefaultMinorUnitExponent),
					titles[acc.CurrencyID],
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&includeClosed, "closed", false, "include closed accounts")
	return cmd
}
