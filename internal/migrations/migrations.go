package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationsFS embed.FS

// Apply runs every pending migration for the given dialect, in
// filename order, recording each in migrations_history.
func Apply(ctx context.Context, db *sql.DB, dialect storage.Dialect) error {
	if err := createHistoryTable(ctx, db); err != nil {
		return err
	}

	dir := "sql/" + string(dialect)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	upFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		upFiles = append(upFiles, entry.Name())
	}

	sort.Strings(upFiles)

	for _, filename := range upFiles {
		applied, err := isMigrationApplied(ctx, db, dialect, filename)
		if err != nil {
			return err
		}

		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, dir+"/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		statements := strings.SplitSeq(string(content), ";")
		for stmt := range statements {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", filename, err)
			}
		}

		if err := recordMigration(ctx, db, dialect, filename); err != nil {
			return err
		}
	}

	return nil
}

func createHistoryTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}
	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, dialect storage.Dialect, name string) (bool, error) {
	query := "SELECT COUNT(*) FROM migrations_history WHERE name = ?"
	if dialect == storage.DialectPostgres {
		query = "SELECT COUNT(*) FROM migrations_history WHERE name = $1"
	}

	var count int
	if err := db.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("checking if migration applied: %w", err)
	}
	return count > 0, nil
}

func recordMigration(ctx context.Context, db *sql.DB, dialect storage.Dialect, name string) error {
	query := "INSERT INTO migrations_history (name) VALUES (?)"
	if dialect == storage.DialectPostgres {
		query = "INSERT INTO migrations_history (name) VALUES ($1)"
	}

	if _, err := db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return nil
}
