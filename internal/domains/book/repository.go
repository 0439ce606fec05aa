package book

import "context"

// Repository defines data access for books.
type Repository interface {
	// Create inserts a new book and returns the flat row.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns the book with author/publisher expanded.
	// ErrBookNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*BookWithRelations, error)

	// List returns one page of expanded books plus the total row count.
	List(ctx context.Context, filter Filter) ([]BookWithRelations, int64, error)

	// Update persists the full entity and returns the flat row.
	// ErrBookNotFound if absent.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the row. ErrBookNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
