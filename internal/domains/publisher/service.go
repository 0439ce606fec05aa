package publisher

import "context"

// Service defines business logic for the publisher resource.
type Service interface {
	Create(ctx context.Context, req *CreatePublisherRequest) (*Publisher, error)
	GetByID(ctx context.Context, id int64) (*Publisher, error)
	List(ctx context.Context, filter Filter) ([]Publisher, int64, error)

	// Update applies supplied fields only; omitted fields are unchanged.
	Update(ctx context.Context, id int64, req *UpdatePublisherRequest) (*Publisher, error)

	// Delete hard-deletes the publisher. ErrPublisherHasBooks when books
	// still reference it.
	Delete(ctx context.Context, id int64) error
}
