package links

import (
	"context"
	"fmt"

	"link-shortener/internal/domain/link"
)

// Save stores url under slug, replacing any previous destination.
func (s *Service) Save(ctx context.Context, slug, url string) error {
	const op = "links.Service.Save"

	if slug == "" || url == "" {
		return fmt.Errorf("%s: %w", op, link.ErrMissingFields)
	}

	if err := s.provider.Put(ctx, slug, url); err != nil {
		return fmt.Errorf("%s: failed to save link: %w", op, err)
	}

	return nil
}
