package repomanager

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/server/models"
)

func TestSQLiteManager_MigrateAndUse(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	// idempotent
	require.NoError(t, m.RunMigrations(ctx, db))

	repo := m.Users(db)
	u, err := repo.Create(ctx, &models.User{Name: "Bob", Email: "bob@example.com", Password: "h"})
	require.NoError(t, err)

	got, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	_, err = repo.Create(ctx, &models.User{Name: "Bob", Email: "bob@example.com", Password: "h"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}
