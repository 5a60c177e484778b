package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a user account can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a free-form role string against the enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Scopes returns the authorization scopes granted by a role. The mapping is
// total: admin covers both scopes, user only its own.
func (r Role) Scopes() []string {
	if r == RoleAdmin {
		return []string{string(RoleAdmin), string(RoleUser)}
	}
	return []string{string(RoleUser)}
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")
var ErrUserNotFound = errors.New("user not found")
var ErrInactiveUser = errors.New("inactive user")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")

// User models an account in the user directory.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
