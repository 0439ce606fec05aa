package book

import (
	"unicode/utf8"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

const MaxTitleLength = 255

// CreateBookRequest - POST /books
// Foreign-key existence is checked in the service before insert.
type CreateBookRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AuthorID    int64   `json:"author_id"`
	PublisherID int64   `json:"publisher_id"`
}

func (r *CreateBookRequest) Validate() validation.Errors {
	err := ozzo.ValidateStruct(r,
		ozzo.Field(&r.Title, ozzo.Required, ozzo.Length(1, MaxTitleLength)),
		ozzo.Field(&r.AuthorID, ozzo.Required),
		ozzo.Field(&r.PublisherID, ozzo.Required),
	)
	return validation.FromOzzo(err)
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:       r.Title,
		Description: r.Description,
		AuthorID:    r.AuthorID,
		PublisherID: r.PublisherID,
	}
}

// UpdateBookRequest - PUT /books/:id
// Only supplied fields are validated and applied.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AuthorID    *int64  `json:"author_id"`
	PublisherID *int64  `json:"publisher_id"`
}

func (r *UpdateBookRequest) Validate() validation.Errors {
	errs := validation.Errors{}
	if r.Title != nil {
		if *r.Title == "" {
			errs.Add("title", "cannot be blank")
		} else if utf8.RuneCountInString(*r.Title) > MaxTitleLength {
			errs.Add("title", "the length must be no more than 255")
		}
	}
	return errs
}

func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = r.Description
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
	if r.PublisherID != nil {
		b.PublisherID = *r.PublisherID
	}
}

// Filter - query parameters accepted by GET /books. Title holds the
// resolved text filter (canonical `title` beats legacy `search`);
// AuthorID/PublisherID are exact matches.
type Filter struct {
	Title       string
	AuthorID    *int64
	PublisherID *int64
	SortBy      string // whitelisted in the repository, default id
	Order       string // asc (default) or desc
	Page        pagination.Params
}
