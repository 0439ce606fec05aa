package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions carries the paging and filtering query parameters shared by
// the list endpoints. Zero values are omitted from the request.
type ListOptions struct {
	Page    int
	PerPage int
	// Name filters authors and publishers; Title filters books.
	Name  string
	Title string
	// Book-only filters.
	AuthorID    *int64
	PublisherID *int64
	SortBy      string
	Order       string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	if o.Title != "" {
		q.Set("title", o.Title)
	}
	if o.AuthorID != nil {
		q.Set("author_id", strconv.FormatInt(*o.AuthorID, 10))
	}
	if o.PublisherID != nil {
		q.Set("publisher_id", strconv.FormatInt(*o.PublisherID, 10))
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	return q
}

// AuthorInput is the write payload for authors. Pointer fields are omitted
// when nil, which on update leaves the column untouched.
type AuthorInput struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}

// PublisherInput is the write payload for publishers.
type PublisherInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// BookInput is the write payload for books.
type BookInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AuthorID    *int64  `json:"author_id,omitempty"`
	PublisherID *int64  `json:"publisher_id,omitempty"`
}

// AuthorsAPI covers /authors.
type AuthorsAPI struct {
	c *Client
}

func (a *AuthorsAPI) List(ctx context.Context, opts ListOptions) (*Page[Author], error) {
	var page Page[Author]
	if err := a.c.doJSON(ctx, http.MethodGet, "/authors", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *AuthorsAPI) Get(ctx context.Context, id int64) (*Author, error) {
	var author Author
	if err := a.c.doJSON(ctx, http.MethodGet, authorPath(id), nil, nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (a *AuthorsAPI) Create(ctx context.Context, in AuthorInput) (*Author, error) {
	var author Author
	if err := a.c.doJSON(ctx, http.MethodPost, "/authors", nil, in, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (a *AuthorsAPI) Update(ctx context.Context, id int64, in AuthorInput) (*Author, error) {
	var author Author
	if err := a.c.doJSON(ctx, http.MethodPut, authorPath(id), nil, in, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (a *AuthorsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.doJSON(ctx, http.MethodDelete, authorPath(id), nil, nil, nil)
}

// PublishersAPI covers /publishers.
type PublishersAPI struct {
	c *Client
}

func (p *PublishersAPI) List(ctx context.Context, opts ListOptions) (*Page[Publisher], error) {
	var page Page[Publisher]
	if err := p.c.doJSON(ctx, http.MethodGet, "/publishers", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (p *PublishersAPI) Get(ctx context.Context, id int64) (*Publisher, error) {
	var publisher Publisher
	if err := p.c.doJSON(ctx, http.MethodGet, publisherPath(id), nil, nil, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (p *PublishersAPI) Create(ctx context.Context, in PublisherInput) (*Publisher, error) {
	var publisher Publisher
	if err := p.c.doJSON(ctx, http.MethodPost, "/publishers", nil, in, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (p *PublishersAPI) Update(ctx context.Context, id int64, in PublisherInput) (*Publisher, error) {
	var publisher Publisher
	if err := p.c.doJSON(ctx, http.MethodPut, publisherPath(id), nil, in, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (p *PublishersAPI) Delete(ctx context.Context, id int64) error {
	return p.c.doJSON(ctx, http.MethodDelete, publisherPath(id), nil, nil, nil)
}

// BooksAPI covers /books.
type BooksAPI struct {
	c *Client
}

func (b *BooksAPI) List(ctx context.Context, opts ListOptions) (*Page[Book], error) {
	var page Page[Book]
	if err := b.c.doJSON(ctx, http.MethodGet, "/books", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (b *BooksAPI) Get(ctx context.Context, id int64) (*Book, error) {
	var book Book
	if err := b.c.doJSON(ctx, http.MethodGet, bookPath(id), nil, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (b *BooksAPI) Create(ctx context.Context, in BookInput) (*Book, error) {
	var book Book
	if err := b.c.doJSON(ctx, http.MethodPost, "/books", nil, in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (b *BooksAPI) Update(ctx context.Context, id int64, in BookInput) (*Book, error) {
	var book Book
	if err := b.c.doJSON(ctx, http.MethodPut, bookPath(id), nil, in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (b *BooksAPI) Delete(ctx context.Context, id int64) error {
	return b.c.doJSON(ctx, http.MethodDelete, bookPath(id), nil, nil, nil)
}

func authorPath(id int64) string    { return fmt.Sprintf("/authors/%d", id) }
func publisherPath(id int64) string { return fmt.Sprintf("/publishers/%d", id) }
func bookPath(id int64) string      { return fmt.Sprintf("/books/%d", id) }
