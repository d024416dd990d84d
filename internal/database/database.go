// Package database opens the relational store and keeps its schema current.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KirkDiggler/pearl/internal/logging"
	"github.com/KirkDiggler/pearl/internal/models"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Config holds the connection settings
type Config struct {
	// Type is TypeSQLite or TypePostgres
	Type string

	// DSN is a postgres connection string or a sqlite file path
	DSN string

	LogLevel      slog.Level
	SlowThreshold time.Duration
}

// Open connects to the configured database
func Open(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	handler := logging.NewHandler(cfg.LogLevel)
	log := slog.New(handler).With(logging.NameKey, "database")
	log.InfoContext(ctx, "opening database", "database_type", cfg.Type)

	gormConfig := &gorm.Config{
		Logger: logging.NewGormLogger(handler, cfg.SlowThreshold),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	switch cfg.Type {
	case TypeSQLite:
		parentDir := filepath.Dir(cfg.DSN)
		if parentDir != "" {
			if err := os.MkdirAll(parentDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.DSN), gormConfig)
	case TypePostgres:
		return gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type: %s (must be %q or %q)", cfg.Type, TypeSQLite, TypePostgres)
	}
}

// Migrate creates or updates the currency and settings tables
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().AutoMigrate(
			&models.Account{},
			&models.GuildSettings{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		return nil
	})
}

// Create opens the database and migrates it
func Create(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	db, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
