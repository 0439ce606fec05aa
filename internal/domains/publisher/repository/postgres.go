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

	"library-catalog/internal/domains/publisher"
	"library-catalog/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the publisher repository. cache may be nil.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) publisher.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

const (
	cacheKeyPrefix = "publisher:"
	cacheTTL       = 15 * time.Minute
)

func cacheKey(id int64) string {
	return cacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) Create(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
        INSERT INTO publishers (name, address)
        VALUES ($1, $2)
        RETURNING id, name, address, created_at, updated_at
    `

	var created publisher.Publisher
	err := r.pool.QueryRow(ctx, query, p.Name, p.Address).Scan(
		&created.ID,
		&created.Name,
		&created.Address,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*publisher.Publisher, error) {
	var p publisher.Publisher
	if r.cache != nil {
		if found, err := r.cache.Get(ctx, cacheKey(id), &p); err == nil && found {
			return &p, nil
		}
	}

	query := `
        SELECT id, name, address, created_at, updated_at
        FROM publishers
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("get publisher by id: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey(id), &p, cacheTTL)
	}

	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter publisher.Filter) ([]publisher.Publisher, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where.WriteString(fmt.Sprintf(" AND name ILIKE $%d", len(args)))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM publishers" + where.String()
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count publishers: %w", err)
	}

	params := filter.Page.Normalize()
	args = append(args, params.PerPage, params.Offset())
	query := fmt.Sprintf(`
        SELECT id, name, address, created_at, updated_at
        FROM publishers%s
        ORDER BY id ASC
        LIMIT $%d OFFSET $%d
    `, where.String(), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list publishers: %w", err)
	}
	defer rows.Close()

	publishers := []publisher.Publisher{}
	for rows.Next() {
		var p publisher.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan publisher: %w", err)
		}
		publishers = append(publishers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate publishers: %w", err)
	}

	return publishers, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
        UPDATE publishers
        SET name = $1, address = $2, updated_at = now()
        WHERE id = $3
        RETURNING id, name, address, created_at, updated_at
    `

	var updated publisher.Publisher
	err := r.pool.QueryRow(ctx, query, p.Name, p.Address, p.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Address,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("update publisher: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(p.ID))
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return publisher.ErrPublisherHasBooks
		}
		return fmt.Errorf("delete publisher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrPublisherNotFound
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, cacheKey(id))
	}

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM publishers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check publisher exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) BookCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE publisher_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count books for publisher: %w", err)
	}
	return count, nil
}
