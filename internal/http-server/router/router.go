package router

import (
	"log/slog"
	"net/http"

	"link-shortener/internal/http-server/middleware/auth"
	mwLogger "link-shortener/internal/http-server/middleware/logger"
	mwMetrics "link-shortener/internal/http-server/middleware/metrics"
	"link-shortener/internal/http-server/route"
	resp "link-shortener/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers holds one handler per routable request class.
type Handlers struct {
	Redirect  http.Handler
	Dashboard http.Handler
	Add       http.Handler
	Delete    http.Handler
	List      http.Handler
}

// New builds the service mux. Every request goes through the auth gate and
// then to the handler of its route.Class; unmatched admin requests get 400.
func New(log *slog.Logger, gate *auth.Gate, h Handlers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwMetrics.New())
	router.Use(gate.Middleware(log))

	dispatcher := Dispatch(log, h)

	router.Handle("/", dispatcher)
	router.Handle("/*", dispatcher)

	// methods outside chi's method map (PROPFIND, PURGE, ...) land here
	router.MethodNotAllowed(dispatcher)
	router.NotFound(dispatcher)

	return router
}

// Dispatch routes a request to the handler of its class.
func Dispatch(log *slog.Logger, h Handlers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.router.Dispatch"

		switch route.Classify(r.Method, r.URL.Path) {
		case route.Redirect:
			h.Redirect.ServeHTTP(w, r)
		case route.AdminUI:
			h.Dashboard.ServeHTTP(w, r)
		case route.APIAdd:
			h.Add.ServeHTTP(w, r)
		case route.APIDelete:
			h.Delete.ServeHTTP(w, r)
		case route.APIList:
			h.List.ServeHTTP(w, r)
		default:
			if err := resp.RenderText(w, http.StatusBadRequest, resp.BodyBadRequest); err != nil {
				log.Error("failed to render response",
					slog.String("op", op),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
