package redirect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"link-shortener/internal/domain/link"
	resp "link-shortener/internal/lib/api/response"
	"link-shortener/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
)

const bodyNotFound = "404 - Link not found"

//go:generate go run github.com/vektra/mockery/v3
type LinkResolver interface {
	Resolve(ctx context.Context, slug string) (string, error)
}

// New serves public paths. The slug is the path without its leading slash;
// an empty slug redirects to fallbackURL with 302, a known slug to its
// destination with 301.
func New(log *slog.Logger, resolver LinkResolver, fallbackURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.redirect.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		slug := strings.TrimPrefix(r.URL.Path, "/")
		if slug == "" {
			redirectTo(w, fallbackURL, http.StatusFound)
			log.Debug("redirected to fallback", slog.String("url", fallbackURL))

			metrics.RedirectsTotal.WithLabelValues("fallback").Inc()
			return
		}

		destination, err := resolver.Resolve(r.Context(), slug)
		if errors.Is(err, link.ErrLinkNotFound) {
			log.Info("slug not found", slog.String("slug", slug))
			err = resp.RenderText(w, http.StatusNotFound, bodyNotFound)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}
		if err != nil {
			log.Error("failed to resolve slug", slog.String("slug", slug), slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusInternalServerError, resp.BodyInternal)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		redirectTo(w, destination, http.StatusMovedPermanently)
		log.Info("redirected", slog.String("slug", slug), slog.String("url", destination))

		metrics.RedirectsTotal.WithLabelValues("link").Inc()
	}
}

// redirectTo writes location as stored. http.Redirect would resolve a
// non-absolute destination against the request path.
func redirectTo(w http.ResponseWriter, location string, code int) {
	w.Header().Set("Location", location)
	w.WriteHeader(code)
}
