package author

import "context"

// Repository defines data access for authors.
type Repository interface {
	// Create inserts a new author and returns it with id and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns one page of authors plus the total row count for the
	// filter. Name filtering is a case-insensitive substring match.
	List(ctx context.Context, filter Filter) ([]Author, int64, error)

	// Update persists the full entity. Returns ErrAuthorNotFound if absent.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the row. ErrAuthorNotFound if absent,
	// ErrAuthorHasBooks when books still reference it.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// BookCount returns the number of books referencing the author.
	BookCount(ctx context.Context, id int64) (int64, error)
}
