package service

import (
	"context"
	"fmt"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/validation"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService wires the author business logic.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
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

func (s *authorService) Delete(ctx context.Context, id int64) error {
	// Reject deletion while books still reference the author. The FK
	// constraint backstops this check against concurrent inserts.
	count, err := s.repo.BookCount(ctx, id)
	if err != nil {
		return fmt.Errorf("check referencing books: %w", err)
	}
	if count > 0 {
		return author.ErrAuthorHasBooks
	}

	return s.repo.Delete(ctx, id)
}
