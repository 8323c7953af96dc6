// Package repository keeps the history of gateway deployments in SQL.
package repository

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	ImplSqlite   = "sqlite"
	ImplPostgres = "postgres"
)

// Connect opens the history database for impl, either sqlite or postgres.
func Connect(impl string, dsn string) (*sqlx.DB, error) {
	var driver string
	switch impl {
	case ImplSqlite:
		driver = "sqlite3"
	case ImplPostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported db implementation %q", impl)
	}
	slog.Debug("repository: connecting", "impl", impl)
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %v: %w", impl, err)
	}
	return db, nil
}
