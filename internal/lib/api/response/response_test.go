package response_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"link-shortener/internal/lib/api/response"

	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	require.NoError(t, response.RenderText(rr, http.StatusBadRequest, response.BodyMissingData))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Missing data", rr.Body.String())
	require.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	require.NoError(t, response.RenderJSON(rr, http.StatusOK, []string{}))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[]", rr.Body.String())
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRenderJSON_EncodeError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	require.Error(t, response.RenderJSON(rr, http.StatusOK, math.Inf(1)))
	require.Empty(t, rr.Body.String())
}
