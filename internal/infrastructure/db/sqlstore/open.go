// Package sqlstore provides the relational persistence layer: connection
// setup, embedded migrations, and the repositories behind the core ports.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // sqlite driver
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Open connects to the database named by dsn and migrates it to the current
// schema. postgres:// DSNs go through pgx; anything else is treated as a
// sqlite path (":memory:" works for tests).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	driver, dialect, dir := "sqlite", "sqlite3", "migrations/sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, dialect, dir = "pgx", "postgres", "migrations/postgres"
	} else {
		if strings.ContainsRune(dsn, '?') {
			dsn += "&"
		} else {
			dsn += "?"
		}
		dsn += "_time_format=sqlite"
	}

	handle, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if driver == "sqlite" {
		// modernc sqlite serializes writes; a single connection avoids
		// SQLITE_BUSY under concurrent handlers.
		handle.SetMaxOpenConns(1)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, handle, dir); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return handle, nil
}
