package author

import "context"

// Service defines business logic for the author resource.
type Service interface {
	// Create validates the payload and inserts a new author.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns a page of authors and the total count for the filter.
	List(ctx context.Context, filter Filter) ([]Author, int64, error)

	// Update applies the supplied fields only; omitted fields keep their
	// previous values. ErrAuthorNotFound if the id is absent.
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// Delete hard-deletes the author. ErrAuthorHasBooks when books still
	// reference it.
	Delete(ctx context.Context, id int64) error
}
