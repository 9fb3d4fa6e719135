package links

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"link-shortener/internal/domain/link"
	"link-shortener/internal/storage"
)

// List returns every link on the store's first key page, in listing order.
//
// Each destination is fetched with its own sequential Get, so latency grows
// with the page size. Keys deleted between List and Get are skipped.
func (s *Service) List(ctx context.Context) ([]link.Link, error) {
	const op = "links.Service.List"

	slugs, err := s.provider.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list slugs: %w", op, err)
	}

	links := make([]link.Link, 0, len(slugs))
	for _, slug := range slugs {
		dest, err := s.provider.Get(ctx, slug)
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Debug("slug vanished during listing", slog.String("slug", slug))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: failed to get %q: %w", op, slug, err)
		}

		links = append(links, link.Link{Slug: slug, URL: dest})
	}

	return links, nil
}
