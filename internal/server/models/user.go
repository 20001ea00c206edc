// Package models holds the server-side data types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// User is a registered account. Password always holds a bcrypt hash once the
// record has been persisted and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// RegisterRequest is the registration form. Password2 is the confirmation
// field and is never stored.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=30,bcryptmax"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
