package link

import "errors"

var (
	// ErrLinkNotFound indicates that no destination is stored for the slug
	ErrLinkNotFound = errors.New("link not found")
	// ErrMissingFields indicates that a required form field is absent or empty
	ErrMissingFields = errors.New("missing data")
)

// Link maps a slug to its destination URL.
type Link struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}
