package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"link-shortener/internal/config"
	"link-shortener/internal/http-server/route"
	resp "link-shortener/internal/lib/api/response"
	"link-shortener/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	bodyAccessDenied = "Access Denied"
	defaultRealm     = "Admin Area"
)

var (
	// ErrNoPassword is returned by New when no admin password is configured
	ErrNoPassword = errors.New("admin password is not configured")

	// ErrUnauthenticated is wrapped by every credential check failure
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrMissingHeader        = fmt.Errorf("%w: missing authorization header", ErrUnauthenticated)
	ErrInvalidScheme        = fmt.Errorf("%w: authorization scheme is not Basic", ErrUnauthenticated)
	ErrMissingToken         = fmt.Errorf("%w: missing basic credentials", ErrUnauthenticated)
	ErrMalformedEncoding    = fmt.Errorf("%w: credentials are not valid base64", ErrUnauthenticated)
	ErrMalformedCredentials = fmt.Errorf("%w: credentials have no password part", ErrUnauthenticated)
	ErrWrongPassword        = fmt.Errorf("%w: wrong password", ErrUnauthenticated)
)

// Gate guards admin paths with HTTP Basic authentication. The user name is
// accepted as is; only the password is compared.
type Gate struct {
	password  []byte
	challenge string
}

// New builds a Gate from the admin settings. It fails when the password is empty.
func New(cfg config.Admin) (*Gate, error) {
	const op = "middleware.auth.New"

	if cfg.Password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoPassword)
	}

	realm := cfg.Realm
	if realm == "" {
		realm = defaultRealm
	}

	return &Gate{
		password:  []byte(cfg.Password),
		challenge: fmt.Sprintf("Basic realm=%q", realm),
	}, nil
}

// Check validates the value of an Authorization header.
func (g *Gate) Check(header string) error {
	if header == "" {
		return ErrMissingHeader
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Basic") {
		return ErrInvalidScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}

	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ErrMalformedEncoding
	}

	_, pass, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return ErrMalformedCredentials
	}

	if subtle.ConstantTimeCompare([]byte(pass), g.password) != 1 {
		return ErrWrongPassword
	}

	return nil
}

// Middleware enforces Check on every non-public path and answers failures
// with a 401 Basic challenge. Public paths pass through untouched.
func (g *Gate) Middleware(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.auth.Middleware"

		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			if route.IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			err := g.Check(r.Header.Get("Authorization"))
			if err != nil {
				log.Warn("admin request rejected",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()),
				)

				metrics.AuthFailuresTotal.WithLabelValues(reason(err)).Inc()

				w.Header().Set("WWW-Authenticate", g.challenge)
				if err = resp.RenderText(w, http.StatusUnauthorized, bodyAccessDenied); err != nil {
					log.Error("failed to render response", slog.String("error", err.Error()))
				}
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, ErrInvalidScheme):
		return "invalid_scheme"
	case errors.Is(err, ErrMissingToken):
		return "missing_token"
	case errors.Is(err, ErrMalformedEncoding):
		return "malformed_encoding"
	case errors.Is(err, ErrMalformedCredentials):
		return "malformed_credentials"
	default:
		return "wrong_password"
	}
}
