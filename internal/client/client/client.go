package client

import (
	"context"

	"github.com/dmitrijs2005/devauth/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Current(ctx context.Context) (*models.Identity, error)
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
}
