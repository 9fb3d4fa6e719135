package links

import (
	"context"
	"log/slog"
)

// Provider is the key-value store the service works on.
//
//go:generate go run github.com/vektra/mockery/v3
type Provider interface {
	Get(ctx context.Context, slug string) (string, error)
	Put(ctx context.Context, slug, url string) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context) ([]string, error)
}

type Service struct {
	log      *slog.Logger
	provider Provider
}

// New creates a new link service over the given store.
func New(log *slog.Logger, provider Provider) *Service {
	return &Service{
		log:      log,
		provider: provider,
	}
}
