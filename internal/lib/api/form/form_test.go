package form_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"link-shortener/internal/lib/api/form"

	"github.com/stretchr/testify/require"
)

type addRequest struct {
	Slug string `validate:"required"`
	URL  string `validate:"required"`
}

func TestParse_URLEncoded(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/add?slug=fromquery", strings.NewReader("slug=yt&url=https%3A%2F%2Fyoutube.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := form.Parse(httptest.NewRecorder(), req)
	require.NoError(t, err)
	require.Equal(t, "yt", values.Get("slug"))
	require.Equal(t, "https://youtube.com", values.Get("url"))
}

func TestParse_Multipart(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("slug", "gh"))
	require.NoError(t, mw.WriteField("url", "https://github.com"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	values, err := form.Parse(httptest.NewRecorder(), req)
	require.NoError(t, err)
	require.Equal(t, "gh", values.Get("slug"))
	require.Equal(t, "https://github.com", values.Get("url"))
}

func TestParse_QueryIgnored(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/delete?slug=x", nil)

	values, err := form.Parse(httptest.NewRecorder(), req)
	require.NoError(t, err)
	require.Empty(t, values.Get("slug"))
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/add", strings.NewReader("garbage"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=nope")

	_, err := form.Parse(httptest.NewRecorder(), req)
	require.ErrorIs(t, err, form.ErrMalformed)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, form.Validate(addRequest{Slug: "x", URL: "https://e.com"}))

	err := form.Validate(addRequest{Slug: "x"})
	require.ErrorIs(t, err, form.ErrInvalid)
	require.ErrorContains(t, err, "field URL is a required field")
}
