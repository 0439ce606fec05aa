package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the book repository. Book reads always join
// authors and publishers, so they bypass the entity cache.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// sortColumns whitelists sortable fields; anything else falls back to id so
// the user-supplied sort_by never reaches the SQL text.
var sortColumns = map[string]string{
	"id":           "b.id",
	"title":        "b.title",
	"author_id":    "b.author_id",
	"publisher_id": "b.publisher_id",
	"created_at":   "b.created_at",
}

const selectExpanded = `
        SELECT b.id, b.title, b.description, b.author_id, b.publisher_id,
               b.created_at, b.updated_at,
               a.id, a.name, a.bio, a.created_at, a.updated_at,
               p.id, p.name, p.address, p.created_at, p.updated_at
        FROM books b
        JOIN authors a ON a.id = b.author_id
        JOIN publishers p ON p.id = b.publisher_id
`

func scanExpanded(row pgx.Row) (*book.BookWithRelations, error) {
	var b book.BookWithRelations
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.PublisherID,
		&b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Name, &b.Author.Bio, &b.Author.CreatedAt, &b.Author.UpdatedAt,
		&b.Publisher.ID, &b.Publisher.Name, &b.Publisher.Address, &b.Publisher.CreatedAt, &b.Publisher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, description, author_id, publisher_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, description, author_id, publisher_id, created_at, updated_at
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Description, b.AuthorID, b.PublisherID).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.AuthorID,
		&created.PublisherID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.BookWithRelations, error) {
	b, err := scanExpanded(r.pool.QueryRow(ctx, selectExpanded+" WHERE b.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.BookWithRelations, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		where.WriteString(fmt.Sprintf(" AND b.title ILIKE $%d", len(args)))
	}
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		where.WriteString(fmt.Sprintf(" AND b.author_id = $%d", len(args)))
	}
	if filter.PublisherID != nil {
		args = append(args, *filter.PublisherID)
		where.WriteString(fmt.Sprintf(" AND b.publisher_id = $%d", len(args)))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM books b" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "b.id"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		sortOrder = "DESC"
	}

	params := filter.Page.Normalize()
	args = append(args, params.PerPage, params.Offset())
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		selectExpanded, where.String(), sortColumn, sortOrder, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []book.BookWithRelations{}
	for rows.Next() {
		b, err := scanExpanded(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, description = $2, author_id = $3, publisher_id = $4, updated_at = now()
        WHERE id = $5
        RETURNING id, title, description, author_id, publisher_id, created_at, updated_at
    `

	var updated book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Description, b.AuthorID, b.PublisherID, b.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Description,
		&updated.AuthorID,
		&updated.PublisherID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
