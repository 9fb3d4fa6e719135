package links

import (
	"context"
	"errors"
	"fmt"

	"link-shortener/internal/domain/link"
	"link-shortener/internal/storage"
)

// Resolve returns the destination stored for slug.
func (s *Service) Resolve(ctx context.Context, slug string) (string, error) {
	const op = "links.Service.Resolve"

	dest, err := s.provider.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, link.ErrLinkNotFound)
		}
		return "", fmt.Errorf("%s: failed to get link: %w", op, err)
	}

	// an empty stored value is treated as absence
	if dest == "" {
		return "", fmt.Errorf("%s: %w", op, link.ErrLinkNotFound)
	}

	return dest, nil
}
