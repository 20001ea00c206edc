// Package repomanager vends repository implementations for the configured
// database driver and applies the embedded schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/devauth/internal/dbx"
	"github.com/dmitrijs2005/devauth/internal/server/config"
	"github.com/dmitrijs2005/devauth/internal/server/migrations"
	"github.com/dmitrijs2005/devauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}
	return nil
}

// New returns the manager matching a database/sql driver name.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	case config.DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
