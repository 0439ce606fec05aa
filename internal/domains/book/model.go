package book

import (
	"time"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/publisher"
)

// Book is the domain entity. It is the only entity with relational
// integrity constraints: author_id and publisher_id must reference
// existing rows at creation and update time.
type Book struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"` // required, max 255 chars
	Description *string   `json:"description" db:"description"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	PublisherID int64     `json:"publisher_id" db:"publisher_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// BookWithRelations is the expanded shape served by list and get: the book
// plus its author and publisher summaries.
type BookWithRelations struct {
	Book
	Author    author.Author       `json:"author"`
	Publisher publisher.Publisher `json:"publisher"`
}
