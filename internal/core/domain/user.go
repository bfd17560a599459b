package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")

// ValidRole reports whether r is one of the two access classes.
// A role is fixed at account creation and never changes afterwards.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User models an account in the credential registry. PasswordHash is a
// bcrypt hash; the raw password is never stored or serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the public profile of an authenticated user, the shape
// persisted in the session snapshot. It carries no credential material.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Identity strips the credential fields from a User.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Session binds a session id to the identity it authenticates.
type Session struct {
	ID       string    `json:"id"`
	Identity Identity  `json:"identity"`
	IssuedAt time.Time `json:"issued_at"`
}
