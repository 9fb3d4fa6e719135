package dashboard

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net"
	"net/http"

	resp "link-shortener/internal/lib/api/response"

	"github.com/go-chi/chi/v5/middleware"
)

//go:embed dashboard.html
var page string

var tmpl = template.Must(template.New("dashboard").Parse(page))

type data struct {
	Host string
}

// New serves the admin dashboard. The page is static apart from the request
// hostname, which the client uses to preview short links; the link table is
// loaded by the page itself from /api/list.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.dashboard.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data{Host: Hostname(r)}); err != nil {
			log.Error("failed to render dashboard", slog.String("error", err.Error()))
			err = resp.RenderText(w, http.StatusInternalServerError, resp.BodyInternal)
			if err != nil {
				log.Error("failed to render response", slog.String("error", err.Error()))
			}
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.Error("failed to write dashboard", slog.String("error", err.Error()))
		}
	}
}

// Hostname returns the request host without its port.
func Hostname(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}

	return host
}
