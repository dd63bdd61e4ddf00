// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// NewStoreFromDSN opens the database, applies migrations and returns a Store.
// dbType is one of "sqlite", "postgres" or "mysql".
func NewStoreFromDSN(dbType, dsn string) (*BunStore, error) {
	driverName := dbType
	switch dbType {
	case "sqlite":
		if err := ensureSqliteDir(dsn); err != nil {
			return nil, err
		}
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		driverName = "pgx"
	case "mysql":
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const (
		defaultMaxOpenConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)
	maxOpen := defaultMaxOpenConns
	if v := os.Getenv("YAPFASTR_DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxOpen = n
		}
	}
	// In-memory SQLite databases are per connection; keep a single one so
	// the schema stays visible.
	if dbType == "sqlite" && isSqliteMemory(dsn) {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)
	dbLogf("db: opened %s driver in %s (max open=%d)", driverName, time.Since(start), maxOpen)

	bunDB := createBunDB(sqlDB, dbType)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migStart := time.Now()
	if err := RunMigrations(ctx, bunDB); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	dbLogf("db: migrations for %s completed in %s", dbType, time.Since(migStart))

	return &BunStore{bun: bunDB, dbType: dbType}, nil
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func isSqliteMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// ensureSqliteDir creates the parent directory of a file-backed SQLite DSN.
func ensureSqliteDir(dsn string) error {
	if isSqliteMemory(dsn) {
		return nil
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("could not create database directory %s: %w", dir, err)
	}
	return nil
}
