package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/devauth/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  email      TEXT NOT NULL UNIQUE,
  password   TEXT NOT NULL,
  avatar     TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_CreateThenLookup(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	fixed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	r.now = func() time.Time { return fixed }
	ctx := context.Background()

	created, err := r.Create(ctx, newUser())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.Equal(fixed))

	byEmail, err := r.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)
	assert.Equal(t, "$2a$10$hash", byEmail.Password)
	assert.True(t, byEmail.CreatedAt.Equal(fixed))

	byID, err := r.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestSQLite_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, newUser())
	require.NoError(t, err)

	_, err = r.Create(ctx, newUser())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLite_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_EmailMatchIsExact(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, newUser())
	require.NoError(t, err)

	_, err = r.GetUserByEmail(ctx, "ALICE@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.GetUserByEmail(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "db error")
}
