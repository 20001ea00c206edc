// Package users persists user records. Lookups return common.ErrorNotFound
// when nothing matches and Create returns common.ErrorAlreadyExists when the
// email is already taken.
package users

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/devauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Avatar, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
