package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/dbx"
	"github.com/dmitrijs2005/devauth/internal/server/models"
)

// SQLiteRepository is the single-file store used for local development.
// SQLite has no UUID generator, so ids are assigned here on insert.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, name, email, password, avatar, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 `

	id := uuid.NewString()
	createdAt := r.now().UTC().Truncate(time.Millisecond)

	_, err := r.db.ExecContext(ctx, query,
		id, user.Name, user.Email, user.Password, user.Avatar, createdAt)

	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	user.CreatedAt = createdAt
	return user, nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password, avatar, created_at FROM users
		 WHERE email = ?
		 `

	return r.getOne(ctx, query, email)
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password, avatar, created_at FROM users
		 WHERE id = ?
		 `

	return r.getOne(ctx, query, id)
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// extended codes disabled on this connection
		return strings.Contains(sqliteErr.Error(), "UNIQUE")
	}
	return false
}
