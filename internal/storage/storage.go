// Package storage owns database handles and the cache layer. Opening,
// dialect selection, and migrations happen here; queries live in the
// repository package.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("not found")

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type Config struct {
	Driver string
	DSN    string
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, Dialect, error) {
	var (
		db      *sql.DB
		dialect Dialect
		err     error
	)

	switch cfg.Driver {
	case "", string(DialectSQLite):
		dialect = DialectSQLite
		db, err = sql.Open("sqlite3", cfg.DSN+"?_journal_mode=WAL&_busy_timeout=5000")
		if err == nil {
			// sqlite serializes writers; one connection avoids
			// SQLITE_BUSY under concurrent handlers.
			db.SetMaxOpenConns(1)
		}
	case string(DialectPostgres):
		dialect = DialectPostgres
		db, err = sql.Open("pgx", cfg.DSN)
	default:
		return nil, "", fmt.Errorf("unknown database driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, "", fmt.Errorf("opening %s database: %w", dialect, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("pinging %s database: %w", dialect, err)
	}

	return db, dialect, nil
}
