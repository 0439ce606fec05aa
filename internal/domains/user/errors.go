package user

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken   = errors.New("email already taken")
	ErrUserNotFound = errors.New("user not found")
)
