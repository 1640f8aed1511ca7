package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/budget_master_backend/pkg/database"
)

// Config holds application configuration.
type Config struct {
	DBDriver     database.Driver
	DBPath       string
	DatabaseURL  string
	User         string
	LogLevel     string
	IsProduction bool
}

const (
	defaultDBPath = "budget_master.db"
	defaultUser   = "budget_master"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DB_DRIVER", string(database.DriverSQLite))
	v.SetDefault("DB_PATH", defaultDBPath)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("LEDGER_USER", defaultUser)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IS_PRODUCTION", false)
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:     database.Driver(strings.ToLower(v.GetString("DB_DRIVER"))),
		DBPath:       v.GetString("DB_PATH"),
		DatabaseURL:  v.GetString("PGSQL_URL"),
		User:         strings.TrimSpace(v.GetString("LEDGER_USER")),
		LogLevel:     v.GetString("LOG_LEVEL"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
	}

	switch cfg.DBDriver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		log.Printf("Warning: unsupported DB_DRIVER ('%s'). Defaulting to %s.\n", cfg.DBDriver, database.DriverSQLite)
		cfg.DBDriver = database.DriverSQLite
	}

	if cfg.DBDriver == database.DriverSQLite && strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultDBPath
		log.Printf("Warning: DB_PATH not set. Defaulting to %s\n", cfg.DBPath)
	}
	if cfg.DBDriver == database.DriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.User == "" {
		cfg.User = defaultUser
		log.Printf("Warning: LEDGER_USER not set. Defaulting to %s\n", cfg.User)
	}

	return cfg, nil
}

// Database returns the store configuration.
func (c *Config) Database() database.Config {
	return database.Config{
		Driver: c.DBDriver,
		Path:   c.DBPath,
		URL:    c.DatabaseURL,
	}
}
