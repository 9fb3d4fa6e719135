package instrumented

import (
	"context"
	"errors"
	"time"

	"link-shortener/internal/lib/metrics"
	"link-shortener/internal/storage"
)

// Storage records operation counts and latencies for the wrapped store.
type Storage struct {
	next storage.Store
}

func New(next storage.Store) *Storage {
	return &Storage{next: next}
}

func (s *Storage) Get(ctx context.Context, slug string) (string, error) {
	const op = "Get"
	start := time.Now()
	url, err := s.next.Get(ctx, slug)
	s.recordMetrics(op, err, start)
	return url, err
}

func (s *Storage) Put(ctx context.Context, slug, url string) error {
	const op = "Put"
	start := time.Now()
	err := s.next.Put(ctx, slug, url)
	s.recordMetrics(op, err, start)
	return err
}

func (s *Storage) Delete(ctx context.Context, slug string) error {
	const op = "Delete"
	start := time.Now()
	err := s.next.Delete(ctx, slug)
	s.recordMetrics(op, err, start)
	return err
}

func (s *Storage) List(ctx context.Context) ([]string, error) {
	const op = "List"
	start := time.Now()
	slugs, err := s.next.List(ctx)
	s.recordMetrics(op, err, start)
	return slugs, err
}

func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
