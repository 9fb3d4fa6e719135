package storage

import (
	"context"
	"errors"
)

// DefaultPageSize bounds the number of keys a single List call returns.
const DefaultPageSize = 1000

var (
	ErrNotFound = errors.New("slug not found")
)

// Store is a durable slug -> destination mapping.
//
// Put is an upsert: the latest write for a slug wins. Delete of an absent
// slug is not an error. List returns one page of keys in the backend's
// native order and never more than the backend's page size.
type Store interface {
	Get(ctx context.Context, slug string) (string, error)
	Put(ctx context.Context, slug, url string) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}
