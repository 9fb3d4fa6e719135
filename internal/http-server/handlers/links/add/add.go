package add

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

const bodySuccess = "Success"

type Request struct {
	Slug string `validate:"required"`
	URL  string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v3
type LinkSaver interface {
	Save(ctx context.Context, slug, url string) error
}

// New handles POST /api/add with form fields slug and url. An existing slug
// is overwritten.
func New(log *slog.Logger, linkSaver LinkSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.links.add.New"

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

		req := Request{
			Slug: values.Get("slug"),
			URL:  values.Get("url"),
		}

		log.Info("request decoded", slog.Any("req", req))

		if err = form.Validate(req); err != nil {
			log.Info("invalid request", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusBadRequest, resp.BodyMissingData)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		err = linkSaver.Save(r.Context(), req.Slug, req.URL)
		if errors.Is(err, link.ErrMissingFields) {
			err = resp.RenderText(w, http.StatusBadRequest, resp.BodyMissingData)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}
		if err != nil {
			log.Error("failed to save link", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusInternalServerError, resp.BodyInternal)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		log.Info("link saved", slog.String("slug", req.Slug), slog.String("url", req.URL))

		metrics.LinksSavedTotal.Inc()

		err = resp.RenderText(w, http.StatusOK, bodySuccess)
		if err != nil {
			log.Error("failed to render response", slog.String("error", err.Error()))
		}
	}
}
