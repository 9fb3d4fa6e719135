package links

import (
	"context"
	"fmt"

	"link-shortener/internal/domain/link"
)

// Delete removes slug. Deleting an absent slug succeeds.
func (s *Service) Delete(ctx context.Context, slug string) error {
	const op = "links.Service.Delete"

	if slug == "" {
		return fmt.Errorf("%s: %w", op, link.ErrMissingFields)
	}

	if err := s.provider.Delete(ctx, slug); err != nil {
		return fmt.Errorf("%s: failed to delete link: %w", op, err)
	}

	return nil
}
