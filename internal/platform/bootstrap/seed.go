package bootstrap

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
)

// InitializerUser stamps every seeded row.
const InitializerUser = "initializer"

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults is the fixed dataset a fresh store is seeded with.
type Defaults struct {
	Currencies []string       `yaml:"currencies"`
	Categories []CategorySeed `yaml:"categories"`
	Accounts   []AccountSeed  `yaml:"accounts"`
}

// CategorySeed is a node of the default category tree. Children inherit the
// operation type of their root.
type CategorySeed struct {
	Title         string               `yaml:"title"`
	OperationType domain.OperationType `yaml:"operation_type"`
	Children      []CategorySeed       `yaml:"children"`
}

// AccountSeed is a default account.
type AccountSeed struct {
	Title      string             `yaml:"title"`
	Type       domain.AccountType `yaml:"type"`
	CurrencyID int64              `yaml:"currency_id"`
	Amount     int64              `yaml:"amount"`
	Closed     int                `yaml:"closed"`
}

// LoadDefaults decodes the embedded dataset.
func LoadDefaults() (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		return nil, fmt.Errorf("failed to decode default dataset: %w", err)
	}
	return &d, nil
}

// CategoryCount returns the number of nodes in the default tree.
func (d *Defaults) CategoryCount() int {
	return len(flattenCategories(d.Categories))
}

type flatCategory struct {
	seed          CategorySeed
	operationType domain.OperationType
	parent        int
}

// flattenCategories lists the tree breadth-first. parent indexes into the
// returned slice, -1 for roots.
func flattenCategories(roots []CategorySeed) []flatCategory {
	out := make([]flatCategory, 0, len(roots))
	for _, r := range roots {
		out = append(out, flatCategory{seed: r, operationType: r.OperationType, parent: -1})
	}
	for i := 0; i < len(out); i++ {
		for _, child := range out[i].seed.Children {
			out = append(out, flatCategory{seed: child, operationType: out[i].operationType, parent: i})
		}
	}
	return out
}

func seedCurrencies(ctx context.Context, repo portsrepo.CurrencyWriter, d *Defaults, now time.Time) error {
	for i, title := range d.Currencies {
		c := domain.Currency{Title: title, Position: i + 1}
		c.StampCreate(InitializerUser, now)
		if _, err := repo.Save(ctx, c); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", title, err)
		}
	}
	return nil
}

func seedCategories(ctx context.Context, repo portsrepo.CategoryWriter, d *Defaults, now time.Time) error {
	flat := flattenCategories(d.Categories)
	ids := make([]int64, len(flat))
	for i, node := range flat {
		c := domain.Category{
			Title:         node.seed.Title,
			Position:      i + 1,
			OperationType: node.operationType,
			Type:          domain.CategoryTypeParent,
		}
		if node.parent >= 0 {
			c.Type = domain.CategoryTypeChild
			c.ParentID = domain.Ptr(ids[node.parent])
		}
		c.StampCreate(InitializerUser, now)
		saved, err := repo.Save(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Title, err)
		}
		ids[i] = saved.ID
	}
	return nil
}

func seedAccounts(ctx context.Context, repo portsrepo.AccountWriter, d *Defaults, now time.Time) error {
	for i, s := range d.Accounts {
		a := domain.Account{
			Title:      s.Title,
			Position:   i + 1,
			Amount:     s.Amount,
			Type:       s.Type,
			CurrencyID: s.CurrencyID,
			Closed:     s.Closed,
		}
		a.StampCreate(InitializerUser, now)
		if _, err := repo.Save(ctx, a); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", s.Title, err)
		}
	}
	return nil
}
