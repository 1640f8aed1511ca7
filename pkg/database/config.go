package database

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Driver names a registered database/sql driver.
type Driver string

const (
	// DriverSQLite is modernc.org/sqlite.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres is github.com/jackc/pgx/v5/stdlib.
	DriverPostgres Driver = "pgx"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// Config selects and locates the store.
type Config struct {
	Driver Driver
	// Path is the SQLite data file.
	Path string
	// URL is the Postgres connection string.
	URL string
}

// Validate checks that the fields required by the driver are present.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return fmt.Errorf("sqlite path cannot be empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.URL) == "" {
			return fmt.Errorf("database URL cannot be empty")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	return nil
}

// IsFile reports whether the store lives in a local file.
func (c Config) IsFile() bool {
	return c.Driver == DriverSQLite && c.Path != MemoryPath
}

// DataSourceName builds the DSN passed to sql.Open.
func (c Config) DataSourceName() string {
	if c.Driver == DriverPostgres {
		return c.URL
	}
	path := c.Path
	if path != MemoryPath {
		path = filepath.Clean(path)
	}
	// foreign keys are declared in the schema but not enforced at runtime
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(0)&_txlock=immediate"
}
