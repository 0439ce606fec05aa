package service

import (
	"context"
	"fmt"

	"library-catalog/internal/domains/publisher"
	"library-catalog/internal/shared/validation"
)

type publisherService struct {
	repo publisher.Repository
}

// NewPublisherService wires the publisher business logic.
func NewPublisherService(repo publisher.Repository) publisher.Service {
	return &publisherService{repo: repo}
}

func (s *publisherService) Create(ctx context.Context, req *publisher.CreatePublisherRequest) (*publisher.Publisher, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *publisherService) GetByID(ctx context.Context, id int64) (*publisher.Publisher, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *publisherService) List(ctx context.Context, filter publisher.Filter) ([]publisher.Publisher, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *publisherService) Update(ctx context.Context, id int64, req *publisher.UpdatePublisherRequest) (*publisher.Publisher, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	return s.repo.Update(ctx, existing)
}

func (s *publisherService) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.BookCount(ctx, id)
	if err != nil {
		return fmt.Errorf("check referencing books: %w", err)
	}
	if count > 0 {
		return publisher.ErrPublisherHasBooks
	}

	return s.repo.Delete(ctx, id)
}
