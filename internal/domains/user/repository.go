package user

import "context"

// Repository defines data access for the credential store.
type Repository interface {
	// Create inserts a new user. Returns ErrEmailTaken on a unique violation.
	Create(ctx context.Context, u *User) (*User, error)

	// FindByEmail returns ErrUserNotFound when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns ErrUserNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// ExistsByEmail checks uniqueness without fetching the row.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
