// Package repomanager opens the configured database, runs the embedded goose
// migrations and vends repositories bound to a DBTX.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// Open picks the driver from the DSN scheme (postgres://, postgresql://,
// sqlite:, file:), opens and pings the database and migrates it.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	driver, source, m, err := resolve(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == "sqlite" {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, m, nil
}

func resolve(dsn string) (driver, source string, m RepositoryManager, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, NewPostgresRepositoryManager(), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite", strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite:"), "//"), NewSQLiteRepositoryManager(), nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite", dsn, NewSQLiteRepositoryManager(), nil
	default:
		return "", "", nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
	}
}

// redact keeps the scheme only; DSNs often carry passwords.
func redact(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, ":"); ok {
		return scheme + ":..."
	}
	return "..."
}
