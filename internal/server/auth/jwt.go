package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/devauth/internal/common"
)

// Identity is the public part of a user that travels inside a token and is
// handed back by the identity endpoint. It never carries password material.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Claims are the signed token contents: the identity plus exp/iat.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens with one
// process-wide secret.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secret: secret, validity: validity, now: time.Now}
}

// Issue signs id into a token that expires after the configured validity.
func (m *TokenManager) Issue(id Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. Expired tokens yield
// common.ErrTokenExpired, everything else common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Identity.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
