package list

import (
	"context"
	"log/slog"
	"net/http"

	"link-shortener/internal/domain/link"
	resp "link-shortener/internal/lib/api/response"

	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v3
type LinkLister interface {
	List(ctx context.Context) ([]link.Link, error)
}

// New handles /api/list and renders every link as a JSON array of
// {"slug", "url"} objects in store order.
func New(log *slog.Logger, linkLister LinkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.links.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		links, err := linkLister.List(r.Context())
		if err != nil {
			log.Error("failed to list links", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusInternalServerError, resp.BodyInternal)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		if links == nil {
			links = []link.Link{}
		}

		log.Debug("links listed", slog.Int("count", len(links)))

		err = resp.RenderJSON(w, http.StatusOK, links)
		if err != nil {
			log.Error("failed to render JSON response", slog.String("error", err.Error()))
		}
	}
}
