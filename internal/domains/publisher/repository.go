package publisher

import "context"

// Repository defines data access for publishers.
type Repository interface {
	Create(ctx context.Context, p *Publisher) (*Publisher, error)

	// GetByID returns ErrPublisherNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*Publisher, error)

	// List returns one page plus the total row count for the filter.
	List(ctx context.Context, filter Filter) ([]Publisher, int64, error)

	// Update persists the full entity. ErrPublisherNotFound if absent.
	Update(ctx context.Context, p *Publisher) (*Publisher, error)

	// Delete removes the row. ErrPublisherNotFound if absent,
	// ErrPublisherHasBooks when books still reference it.
	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// BookCount returns the number of books referencing the publisher.
	BookCount(ctx context.Context, id int64) (int64, error)
}
