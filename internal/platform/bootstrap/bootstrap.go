// Package bootstrap creates the schema of a store and seeds its default dataset.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/platform/logging"
	"github.com/SscSPs/budget_master_backend/internal/repositories/database/sqldb"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

// CreateIfNotExists creates the store described by cfg, applies the schema and
// seeds the defaults. An existing SQLite file is left untouched. It reports
// whether the store was created.
func CreateIfNotExists(ctx context.Context, cfg database.Config) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if cfg.Driver == database.DriverSQLite {
		if !cfg.IsFile() {
			return false, errors.New("an in-memory store cannot be bootstrapped by path")
		}
		_, err := os.Stat(cfg.Path)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("failed to inspect %s: %w", cfg.Path, err)
		}
	}

	applied, err := Migrate(ctx, cfg)
	if err != nil {
		if cfg.IsFile() {
			_ = os.Remove(cfg.Path)
		}
		return false, err
	}
	if !applied {
		return false, nil
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return true, err
	}
	defer store.Close()

	if err := Seed(ctx, store); err != nil {
		return true, err
	}
	logging.FromContext(ctx).Info("Store created", slog.String("driver", string(cfg.Driver)), slog.String("path", cfg.Path))
	return true, nil
}

// Seed writes the full default dataset in one transaction. On failure no
// seeded row remains.
func Seed(ctx context.Context, store *database.Store) error {
	d, err := LoadDefaults()
	if err != nil {
		return err
	}
	repos := sqldb.NewRepositoryProvider(store)
	now := time.Now()

	return store.RunInTx(ctx, func(ctx context.Context) error {
		if err := seedCurrencies(ctx, repos.CurrencyRepo, d, now); err != nil {
			return err
		}
		if err := seedCategories(ctx, repos.CategoryRepo, d, now); err != nil {
			return err
		}
		return seedAccounts(ctx, repos.AccountRepo, d, now)
	})
}

// RestoreDefaults wipes every row and seeds the defaults again in one
// transaction. If seeding fails the previous data is kept.
func RestoreDefaults(ctx context.Context, store *database.Store) error {
	err := store.RunInTx(ctx, func(ctx context.Context) error {
		if err := store.ClearAllData(ctx); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
		if err := Seed(ctx, store); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info("Defaults restored")
	return nil
}

// RestoreDefaultsAt opens the store described by cfg and restores its defaults.
func RestoreDefaultsAt(ctx context.Context, cfg database.Config) error {
	store, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return RestoreDefaults(ctx, store)
}

// RestoreDefaultCurrencies seeds the default currencies if the table is empty.
func RestoreDefaultCurrencies(ctx context.Context, store *database.Store) (bool, error) {
	return seedIfEmpty(ctx, store, database.TableCurrencies, func(ctx context.Context, d *Defaults, now time.Time) error {
		return seedCurrencies(ctx, sqldb.NewCurrencyRepository(store), d, now)
	})
}

// RestoreDefaultCategories seeds the default category tree if the table is empty.
func RestoreDefaultCategories(ctx context.Context, store *database.Store) (bool, error) {
	return seedIfEmpty(ctx, store, database.TableCategories, func(ctx context.Context, d *Defaults, now time.Time) error {
		return seedCategories(ctx, sqldb.NewCategoryRepository(store), d, now)
	})
}

// RestoreDefaultAccounts seeds the default accounts if the table is empty.
func RestoreDefaultAccounts(ctx context.Context, store *database.Store) (bool, error) {
	return seedIfEmpty(ctx, store, database.TableAccounts, func(ctx context.Context, d *Defaults, now time.Time) error {
		return seedAccounts(ctx, sqldb.NewAccountRepository(store), d, now)
	})
}

func seedIfEmpty(ctx context.Context, store *database.Store, table string, seed func(context.Context, *Defaults, time.Time) error) (bool, error) {
	d, err := LoadDefaults()
	if err != nil {
		return false, err
	}
	seeded := false
	err = store.RunInTx(ctx, func(ctx context.Context) error {
		n, err := store.GetTableRecordCount(ctx, table)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		seeded = true
		return seed(ctx, d, time.Now())
	})
	if err != nil {
		return false, fmt.Errorf("failed to restore default %s: %w", table, err)
	}
	return seeded, nil
}
