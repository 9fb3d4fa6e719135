package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"link-shortener/internal/domain/link"
	"link-shortener/internal/lib/api/form"
	resp "link-shortener/internal/lib/api/response"
	"link-shortener/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
)

const bodyDeleted = "Deleted"

type Request struct {
	Slug string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v3
type LinkDeleter interface {
	Delete(ctx context.Context, slug string) error
}

// New handles POST /api/delete with form field slug. Deleting a slug that
// does not exist still answers 200.
func New(log *slog.Logger, linkDeleter LinkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.links.delete.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		values, err := form.Parse(w, r)
		if err != nil {
			log.Error("failed to decode request body", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusBadRequest, resp.BodyBadRequest)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		req := Request{Slug: values.Get("slug")}

		if err = form.Validate(req); err != nil {
			log.Info("invalid request", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusBadRequest, resp.BodyMissingData)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		log = log.With(slog.String("slug", req.Slug))

		err = linkDeleter.Delete(r.Context(), req.Slug)
		if errors.Is(err, link.ErrMissingFields) {
			err = resp.RenderText(w, http.StatusBadRequest, resp.BodyMissingData)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}
		if err != nil {
			log.Error("failed to delete link", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusInternalServerError, resp.BodyInternal)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("link deleted")

		metrics.LinksDeletedTotal.Inc()

		err = resp.RenderText(w, http.StatusOK, bodyDeleted)
		if err != nil {
			log.Error("failed to render response", slog.String("error", err.Error()))
		}
	}
}
