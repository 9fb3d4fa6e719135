package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"link-shortener/internal/storage"
)

// Storage keeps links in a map. Keys are listed in lexicographic order.
type Storage struct {
	mu       sync.RWMutex
	links    map[string]string
	pageSize int
}

// New creates an empty in-memory storage. A non-positive pageSize falls back
// to storage.DefaultPageSize.
func New(pageSize int) *Storage {
	if pageSize <= 0 {
		pageSize = storage.DefaultPageSize
	}

	return &Storage{
		links:    make(map[string]string),
		pageSize: pageSize,
	}
}

func (s *Storage) Get(ctx context.Context, slug string) (string, error) {
	const op = "storage.memory.Get"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	url, ok := s.links[slug]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return url, nil
}

func (s *Storage) Put(ctx context.Context, slug, url string) error {
	const op = "storage.memory.Put"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.links[slug] = url

	return nil
}

func (s *Storage) Delete(ctx context.Context, slug string) error {
	const op = "storage.memory.Delete"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.links, slug)

	return nil
}

func (s *Storage) List(ctx context.Context) ([]string, error) {
	const op = "storage.memory.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	slugs := make([]string, 0, len(s.links))
	for slug := range s.links {
		slugs = append(slugs, slug)
	}
	s.mu.RUnlock()

	slices.Sort(slugs)

	if len(slugs) > s.pageSize {
		slugs = slugs[:s.pageSize]
	}

	return slugs, nil
}

func (s *Storage) Close() error {
	return nil
}
