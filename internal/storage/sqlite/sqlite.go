package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"link-shortener/internal/storage"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db       *sql.DB
	pageSize int
}

// New opens the SQLite database at storagePath. The links table is created
// by the migrator.
func New(storagePath string, pageSize int) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if pageSize <= 0 {
		pageSize = storage.DefaultPageSize
	}

	return &Storage{db: db, pageSize: pageSize}, nil
}

func (s *Storage) Get(ctx context.Context, slug string) (string, error) {
	const op = "storage.sqlite.Get"

	var url string

	err := s.db.QueryRowContext(ctx, "SELECT url FROM links WHERE slug = ?", slug).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

func (s *Storage) Put(ctx context.Context, slug, url string) error {
	const op = "storage.sqlite.Put"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO links (slug, url) VALUES (?, ?)
		ON CONFLICT (slug) DO UPDATE SET url = excluded.url`,
		slug, url,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Delete(ctx context.Context, slug string) error {
	const op = "storage.sqlite.Delete"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM links WHERE slug = ?", slug); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) List(ctx context.Context) ([]string, error) {
	const op = "storage.sqlite.List"

	rows, err := s.db.QueryContext(ctx, "SELECT slug FROM links ORDER BY slug LIMIT ?", s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var slug string
		if err = rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		slugs = append(slugs, slug)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slugs, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}
