package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author"
	"library-catalog/pkg/cache"
)

// postgresRepository implements author.Repository with a Redis cache-aside
// layer on single-row reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the author repository. cache may be nil.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

const (
	cacheKeyPrefix = "author:"
	cacheTTL       = 15 * time.Minute
)

func cacheKey(id int64) string {
	return cacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, bio)
        VALUES ($1, $2)
        RETURNING id, name, bio, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Bio).Scan(
		&created.ID,
		&created.Name,
		&created.Bio,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	var a author.Author
	if r.cache != nil {
		if found, err := r.cache.Get(ctx, cacheKey(id), &a); err == nil && found {
			return &a, nil
		}
	}

	query := `
        SELECT id, name, bio, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Bio,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("get author by id: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey(id), &a, cacheTTL)
	}

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter author.Filter) ([]author.Author, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where.WriteString(fmt.Sprintf(" AND name ILIKE $%d", len(args)))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM authors" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	params := filter.Page.Normalize()
	args = append(args, params.PerPage, params.Offset())
	query := fmt.Sprintf(`
        SELECT id, name, bio, created_at, updated_at
        FROM authors%s
        ORDER BY id ASC
        LIMIT $%d OFFSET $%d
    `, where.String(), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, bio = $2, updated_at = now()
        WHERE id = $3
        RETURNING id, name, bio, created_at, updated_at
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Bio, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Bio,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("update author: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(a.ID))
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(id))
	}

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) BookCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count books for author: %w", err)
	}
	return count, nil
}
