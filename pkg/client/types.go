package client

import "time"

// Wire types mirrored from the server's JSON responses. The SDK keeps its
// own copies so importing it never drags in server internals.

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Publisher struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	AuthorID    int64     `json:"author_id"`
	PublisherID int64     `json:"publisher_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Populated on list/get responses only.
	Author    *Author    `json:"author,omitempty"`
	Publisher *Publisher `json:"publisher,omitempty"`
}

// EntityID lets generic callers read the id without knowing the type.
func (a *Author) EntityID() int64    { return a.ID }
func (p *Publisher) EntityID() int64 { return p.ID }
func (b *Book) EntityID() int64      { return b.ID }

// Page is the server's pagination envelope.
type Page[T any] struct {
	CurrentPage int   `json:"current_page"`
	Data        []T   `json:"data"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}
