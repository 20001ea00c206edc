// Package services contains server-side business logic. UserService runs the
// registration, login and token authentication pipelines. Every step either
// succeeds or ends the pipeline with a classified error from package common.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/gravatar"
	"github.com/dmitrijs2005/devauth/internal/logging"
	"github.com/dmitrijs2005/devauth/internal/server/auth"
	"github.com/dmitrijs2005/devauth/internal/server/models"
	"github.com/dmitrijs2005/devauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devauth/internal/server/validation"
)

// Client-facing messages for business failures.
const (
	MsgUserExists        = "User already exists. Please login."
	MsgUserNotFound      = "User not found."
	MsgPasswordIncorrect = "Password Incorrect."
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenManager
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher,
	tokens *auth.TokenManager, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger.With("module", "services.user"),
	}
}

// Register validates req, rejects taken emails and persists a new user with
// a bcrypt password hash and a gravatar avatar.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if fe := validation.ValidateRegister(req); fe != nil {
		return nil, errors.Join(common.ErrorValidation, fe)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.NewFieldError(common.ErrorAlreadyExists, "email", MsgUserExists)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Avatar:   gravatar.URL(req.Email, gravatar.ProfileAvatar),
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewFieldError(common.ErrorAlreadyExists, "email", MsgUserExists)
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login checks credentials and returns a bearer token ("Bearer <jwt>").
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	if fe := validation.ValidateLogin(req); fe != nil {
		return "", errors.Join(common.ErrorValidation, fe)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	ok, err := s.hasher.Compare(user.Password, req.Password)
	if err != nil {
		s.logger.Error(ctx, "password comparison failed", "error", err, "user_id", user.ID)
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorIncorrectPassword
	}

	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Name: user.Name, Avatar: user.Avatar})
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return "", common.ErrorInternal
	}

	return common.BearerPrefix + token, nil
}

// Authenticate verifies a raw JWT and makes sure its subject still exists.
// Bad, expired or orphaned tokens yield common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetUserByID(ctx, claims.Identity.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	identity := claims.Identity
	return &identity, nil
}
