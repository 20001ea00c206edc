// Package common defines shared constants and sentinel errors used across
// client and server layers of devauth. Callers should use errors.Is to
// match these values and errors.As to extract FieldErrors.
package common

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal          = errors.New("internal error")
	ErrorUnauthorized      = errors.New("unauthorized")
	ErrorValidation        = errors.New("validation error")
	ErrorIncorrectPassword = errors.New("incorrect password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// FieldErrors maps request field names to human-readable messages.
// It is sent to clients as-is, so messages must never carry backend detail.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// NewFieldError joins sentinel with a single-field FieldErrors so callers can
// match the kind with errors.Is and read the detail with errors.As.
func NewFieldError(sentinel error, field, msg string) error {
	return errors.Join(sentinel, FieldErrors{field: msg})
}
