// Package db opens the Postgres connection used by the pipeline.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stock_pipeline/internal/feature/prices/domain"
	"stock_pipeline/internal/shared/env"
)

const (
	defaultHost = "postgres" // service name in docker-compose
	defaultPort = "5432"
)

// Config holds the Postgres connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfigFromEnv loads database configuration from environment variables.
// User, password and database name are required; host and port fall back to
// their defaults.
func LoadConfigFromEnv() (Config, error) {
	user, err := env.Require("POSTGRES_USER")
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	password, err := env.Require("POSTGRES_PASSWORD")
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	name, err := env.Require("POSTGRES_DB")
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	return Config{
		User:     user,
		Password: password,
		Name:     name,
		Host:     env.GetDefault("POSTGRES_HOST", defaultHost),
		Port:     env.GetDefault("POSTGRES_PORT", defaultPort),
	}, nil
}

// BuildDSN renders the keyword/value connection string for cfg.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener opens a gorm.DB for a DSN. Injectable so connection handling is
// testable without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenPostgres is the production Opener.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Open makes a single connection attempt. Retry-on-failure belongs to the
// external scheduler, so an unreachable database fails the run immediately.
func Open(dsn string, open Opener) (*gorm.DB, error) {
	gdb, err := open(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect postgres: %v", domain.ErrStorage, err)
	}
	return gdb, nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
