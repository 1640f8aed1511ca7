package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
)

// Table names in dependency order.
const (
	TableCurrencies = "currencies"
	TableCategories = "categories"
	TableAccounts   = "accounts"
	TableBudgets    = "budgets"
	TableOperations = "operations"
)

// Tables lists every table in dependency order.
var Tables = []string{TableCurrencies, TableCategories, TableAccounts, TableBudgets, TableOperations}

func checkTable(table string) error {
	for _, t := range Tables {
		if t == table {
			return nil
		}
	}
	return apperrors.NewInvalidInput("table", fmt.Sprintf("unknown table %q", table))
}

// GetTableRecordCount counts every row of table, soft-deleted rows included.
func (s *Store) GetTableRecordCount(ctx context.Context, table string) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	return s.ScalarInt(ctx, s.builder.Select("COUNT(*)").From(table))
}

// GetTotalRecordCount sums GetTableRecordCount over all tables.
func (s *Store) GetTotalRecordCount(ctx context.Context) (int64, error) {
	var total int64
	for _, t := range Tables {
		n, err := s.GetTableRecordCount(ctx, t)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// ClearTable physically deletes every row of table and resets its id sequence.
func (s *Store) ClearTable(ctx context.Context, table string) error {
	if err := checkTable(table); err != nil {
		return err
	}
	return s.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.ExecuteWrite(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		return s.resetSequence(ctx, table)
	})
}

// ClearAllData empties every table, dependents first, and resets the id sequences.
func (s *Store) ClearAllData(ctx context.Context) error {
	if s.driver == DriverPostgres {
		reversed := make([]string, 0, len(Tables))
		for i := len(Tables) - 1; i >= 0; i-- {
			reversed = append(reversed, Tables[i])
		}
		_, err := s.ExecuteWrite(ctx, "TRUNCATE TABLE "+strings.Join(reversed, ", ")+" RESTART IDENTITY")
		if err != nil {
			return fmt.Errorf("failed to clear all data: %w", err)
		}
		return nil
	}

	return s.RunInTx(ctx, func(ctx context.Context) error {
		for i := len(Tables) - 1; i >= 0; i-- {
			if _, err := s.ExecuteWrite(ctx, "DELETE FROM "+Tables[i]); err != nil {
				return fmt.Errorf("failed to clear table %s: %w", Tables[i], err)
			}
		}
		if _, err := s.ExecuteWrite(ctx, "DELETE FROM sqlite_sequence"); err != nil {
			return fmt.Errorf("failed to reset sequences: %w", err)
		}
		return nil
	})
}

func (s *Store) resetSequence(ctx context.Context, table string) error {
	var err error
	if s.driver == DriverPostgres {
		_, err = s.ExecuteWrite(ctx, "SELECT setval(pg_get_serial_sequence(?, 'id'), 1, false)", table)
	} else {
		_, err = s.ExecuteWrite(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	}
	if err != nil {
		return fmt.Errorf("failed to reset sequence of %s: %w", table, err)
	}
	return nil
}
