package postgres

import (
	"context"
	"errors"
	"fmt"

	"link-shortener/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	pool     *pgxpool.Pool
	pageSize int
}

// New connects to PostgreSQL using dsn and verifies the connection.
func New(ctx context.Context, dsn string, pageSize int) (*Storage, error) {
	const op = "storage.postgres.New"

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if pageSize <= 0 {
		pageSize = storage.DefaultPageSize
	}

	return &Storage{pool: pool, pageSize: pageSize}, nil
}

func (s *Storage) Get(ctx context.Context, slug string) (string, error) {
	const op = "storage.postgres.Get"

	var url string

	err := s.pool.QueryRow(ctx, "SELECT url FROM links WHERE slug = $1", slug).Scan(&url)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

func (s *Storage) Put(ctx context.Context, slug, url string) error {
	const op = "storage.postgres.Put"

	_, err := s.pool.Exec(ctx, `
		INSERT INTO links (slug, url) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET url = EXCLUDED.url`,
		slug, url,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, slug string) error {
	const op = "storage.postgres.Delete"

	if _, err := s.pool.Exec(ctx, "DELETE FROM links WHERE slug = $1", slug); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) List(ctx context.Context) ([]string, error) {
	const op = "storage.postgres.List"

	rows, err := s.pool.Query(ctx, "SELECT slug FROM links ORDER BY slug LIMIT $1", s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if slugs == nil {
		slugs = make([]string, 0)
	}

	return slugs, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
