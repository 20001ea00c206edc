package repomanager

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/devauth/internal/dbx"
	"github.com/dmitrijs2005/devauth/internal/server/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for local runs.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", "sqlite")
}
