package book

import "context"

// Service defines business logic for the book resource.
type Service interface {
	// Create validates the payload and both foreign keys before inserting;
	// a missing author/publisher is a field-level validation error and
	// performs no insert.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID returns the expanded book. ErrBookNotFound if absent.
	GetByID(ctx context.Context, id int64) (*BookWithRelations, error)

	// List returns a page of expanded books and the total count.
	List(ctx context.Context, filter Filter) ([]BookWithRelations, int64, error)

	// Update applies supplied fields only, re-validating any supplied
	// foreign key. ErrBookNotFound if the id is absent.
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*Book, error)

	// Delete hard-deletes the book. ErrBookNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
