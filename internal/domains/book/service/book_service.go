package service

import (
	"context"
	"fmt"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/publisher"
	"library-catalog/internal/shared/validation"
)

type bookService struct {
	repo       book.Repository
	authors    author.Repository
	publishers publisher.Repository
}

// NewBookService wires the book business logic. The author and publisher
// repositories are needed to verify foreign keys before any write.
func NewBookService(repo book.Repository, authors author.Repository, publishers publisher.Repository) book.Service {
	return &bookService{
		repo:       repo,
		authors:    authors,
		publishers: publishers,
	}
}

// validateRefs confirms the referenced author/publisher exist. A nil id
// means the field was not supplied and is skipped (partial updates).
func (s *bookService) validateRefs(ctx context.Context, authorID, publisherID *int64) error {
	errs := validation.Errors{}

	if authorID != nil {
		exists, err := s.authors.ExistsByID(ctx, *authorID)
		if err != nil {
			return fmt.Errorf("check author exists: %w", err)
		}
		if !exists {
			errs.Add("author_id", "the selected author_id is invalid")
		}
	}

	if publisherID != nil {
		exists, err := s.publishers.ExistsByID(ctx, *publisherID)
		if err != nil {
			return fmt.Errorf("check publisher exists: %w", err)
		}
		if !exists {
			errs.Add("publisher_id", "the selected publisher_id is invalid")
		}
	}

	if errs.Any() {
		return validation.NewError(errs)
	}
	return nil
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}
	if err := s.validateRefs(ctx, &req.AuthorID, &req.PublisherID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.BookWithRelations, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.BookWithRelations, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.Book, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only supplied foreign keys are re-validated.
	if err := s.validateRefs(ctx, req.AuthorID, req.PublisherID); err != nil {
		return nil, err
	}

	entity := existing.Book
	req.ApplyToEntity(&entity)
	return s.repo.Update(ctx, &entity)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
