package user

import (
	"context"

	"library-catalog/pkg/jwt"
)

// Service defines the auth operations: register, login, logout, me.
type Service interface {
	// Register persists a new user with a hashed password and issues a token
	// for it. Email uniqueness violations surface as a field-level
	// validation error on "email".
	Register(ctx context.Context, req *RegisterRequest) (*User, string, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password both return ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginRequest) (string, error)

	// Logout revokes the presented token server-side. Revocation failures
	// are logged, never returned: the client clears its state regardless.
	Logout(ctx context.Context, claims *jwt.Claims)

	// Profile returns the public profile for the authenticated user.
	Profile(ctx context.Context, userID int64) (*Profile, error)
}
