package router_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"link-shortener/internal/config"
	"link-shortener/internal/domain/link"
	"link-shortener/internal/http-server/handlers/dashboard"
	"link-shortener/internal/http-server/handlers/links/add"
	"link-shortener/internal/http-server/handlers/links/delete"
	"link-shortener/internal/http-server/handlers/links/list"
	"link-shortener/internal/http-server/handlers/redirect"
	"link-shortener/internal/http-server/middleware/auth"
	"link-shortener/internal/http-server/router"
	"link-shortener/internal/service/links"
	"link-shortener/internal/storage/memory"

	"github.com/stretchr/testify/require"
)

const (
	password    = "s3cret"
	fallbackURL = "https://fallback.example"
)

type server struct {
	t       *testing.T
	handler http.Handler
	store   *memory.Storage
}

func newServer(t *testing.T) *server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(0)
	svc := links.New(log, store)

	gate, err := auth.New(config.Admin{Password: password, Realm: "Admin Area"})
	require.NoError(t, err)

	handler := router.New(log, gate, router.Handlers{
		Redirect:  redirect.New(log, svc, fallbackURL),
		Dashboard: dashboard.New(log),
		Add:       add.New(log, svc),
		Delete:    delete.New(log, svc),
		List:      list.New(log, svc),
	})

	return &server{t: t, handler: handler, store: store}
}

func (s *server) do(method, target string, form url.Values, authorized bool) *httptest.ResponseRecorder {
	s.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authorized {
		req.SetBasicAuth("admin", password)
	}

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)

	return rr
}

func (s *server) add(slug, dest string) {
	s.t.Helper()

	rr := s.do(http.MethodPost, "/api/add", url.Values{"slug": {slug}, "url": {dest}}, true)
	require.Equal(s.t, http.StatusOK, rr.Code)
	require.Equal(s.t, "Success", rr.Body.String())
}

func TestPublicPathsNeverChallenge(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("known", "https://known.example")

	for _, path := range []string{"/", "/known", "/unknown", "/admin/", "/administrator", "/a/b", "/API/list"} {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodHead} {
			rr := s.do(method, path, nil, false)

			require.NotEqual(t, http.StatusUnauthorized, rr.Code, "%s %s", method, path)
			require.Contains(t,
				[]int{http.StatusMovedPermanently, http.StatusFound, http.StatusNotFound},
				rr.Code, "%s %s", method, path)
		}
	}
}

func TestAdminPathsRequireCredentials(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	badHeaders := []string{
		"",
		"Bearer " + password,
		"Basic",
		"Basic ***",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("admin:wrong")),
		"Basic " + base64.StdEncoding.EncodeToString([]byte(password)),
	}

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin"},
		{http.MethodGet, "/api/list"},
		{http.MethodPost, "/api/add"},
		{http.MethodPost, "/api/delete"},
		{http.MethodGet, "/api/add"},
		{http.MethodGet, "/api"},
		{http.MethodGet, "/apiary"},
	}

	for _, p := range paths {
		for _, header := range badHeaders {
			req := httptest.NewRequest(p.method, p.path, nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			rr := httptest.NewRecorder()
			s.handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s %q", p.method, p.path, header)
			require.Equal(t, `Basic realm="Admin Area"`, rr.Header().Get("WWW-Authenticate"))
			require.Equal(t, "Access Denied", rr.Body.String())
		}
	}
}

func TestAddRedirectListRoundTrip(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("x", "https://e.com")

	rr := s.do(http.MethodGet, "/x", nil, false)
	require.Equal(t, http.StatusMovedPermanently, rr.Code)
	require.Equal(t, "https://e.com", rr.Header().Get("Location"))

	rr = s.do(http.MethodGet, "/api/list", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `[{"slug":"x","url":"https://e.com"}]`, rr.Body.String())
}

func TestAddOverwritesSlug(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("x", "https://first.example")
	s.add("x", "https://second.example")

	rr := s.do(http.MethodGet, "/x", nil, false)
	require.Equal(t, http.StatusMovedPermanently, rr.Code)
	require.Equal(t, "https://second.example", rr.Header().Get("Location"))

	rr = s.do(http.MethodGet, "/api/list", nil, true)
	require.JSONEq(t, `[{"slug":"x","url":"https://second.example"}]`, rr.Body.String())
}

func TestDeleteAbsentSlugKeepsContract(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	rr := s.do(http.MethodPost, "/api/delete", url.Values{"slug": {"ghost"}}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Deleted", rr.Body.String())

	s.add("x", "https://e.com")

	rr = s.do(http.MethodGet, "/api/list", nil, true)
	require.JSONEq(t, `[{"slug":"x","url":"https://e.com"}]`, rr.Body.String())
}

func TestRootRedirectsToFallback(t *testing.T) {
	t.Parallel()

	rr := newServer(t).do(http.MethodGet, "/", nil, false)

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, fallbackURL, rr.Header().Get("Location"))
}

func TestAddWithoutURLDoesNotMutateStore(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	rr := s.do(http.MethodPost, "/api/add", url.Values{"slug": {"x"}}, true)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Missing data", rr.Body.String())

	slugs, err := s.store.List(t.Context())
	require.NoError(t, err)
	require.Empty(t, slugs)
}

func TestListEndToEnd(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	rr := s.do(http.MethodGet, "/api/list", nil, false)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodGet, "/api/list", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[]", rr.Body.String())
}

func TestDeleteEndToEnd(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("x", "https://e.com")

	rr := s.do(http.MethodPost, "/api/delete", url.Values{"slug": {"x"}}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Deleted", rr.Body.String())

	rr = s.do(http.MethodGet, "/x", nil, false)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "404 - Link not found", rr.Body.String())
}

func TestDeleteWithoutSlug(t *testing.T) {
	t.Parallel()

	rr := newServer(t).do(http.MethodPost, "/api/delete", url.Values{}, true)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Missing data", rr.Body.String())
}

func TestUnmatchedAdminRequests(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/add"},
		{http.MethodGet, "/api/delete"},
		{http.MethodPost, "/api"},
		{http.MethodGet, "/api/unknown"},
	} {
		rr := s.do(target.method, target.path, nil, true)

		require.Equal(t, http.StatusBadRequest, rr.Code, "%s %s", target.method, target.path)
		require.Equal(t, "Bad Request", rr.Body.String())
	}
}

func TestNonstandardMethodsReachDispatcher(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("known", "https://known.example")
	s.add("rel", "e.com")

	cases := []struct {
		name       string
		method     string
		path       string
		authorized bool
		statusCode int
		body       string
		location   string
	}{
		{name: "public hit", method: "PROPFIND", path: "/known", statusCode: http.StatusMovedPermanently, location: "https://known.example"},
		{name: "public miss", method: "PURGE", path: "/nope", statusCode: http.StatusNotFound, body: "404 - Link not found"},
		{name: "relative destination", method: http.MethodGet, path: "/rel", statusCode: http.StatusMovedPermanently, location: "e.com"},
		{name: "list accepts any method", method: "PURGE", path: "/api/list", authorized: true, statusCode: http.StatusOK},
		{name: "add needs POST", method: "PURGE", path: "/api/add", authorized: true, statusCode: http.StatusBadRequest, body: "Bad Request"},
		{name: "admin still gated", method: "PROPFIND", path: "/api/list", statusCode: http.StatusUnauthorized, body: "Access Denied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(tc.method, tc.path, nil, tc.authorized)

			require.Equal(t, tc.statusCode, rr.Code)
			if tc.body != "" {
				require.Equal(t, tc.body, rr.Body.String())
			}
			if tc.location != "" {
				require.Equal(t, tc.location, rr.Header().Get("Location"))
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	rr := newServer(t).do(http.MethodGet, "/admin", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), `const HOST = "example.com";`)
}

func TestListKeepsStoreOrder(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.add("b", "https://b.example")
	s.add("a", "https://a.example")

	rr := s.do(http.MethodGet, "/api/list", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t,
		mustJSON(t, []link.Link{{Slug: "a", URL: "https://a.example"}, {Slug: "b", URL: "https://b.example"}}),
		rr.Body.String())
}
