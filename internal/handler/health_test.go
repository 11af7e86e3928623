package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := newHTTPHandler(handler.Deps{})

	rec := do(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	require.Equal(t, "ok", body["status"])
}

func TestOpenAPIDocumentIsServed(t *testing.T) {
	h := newHTTPHandler(handler.Deps{})

	rec := do(t, h, http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi:")
}

func TestUnmatchedRoute(t *testing.T) {
	h := newHTTPHandler(handler.Deps{})

	rec := do(t, h, http.MethodGet, "/nowhere", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

func TestProtectedRoutesUseRequireUser(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	h := newHTTPHandler(handler.Deps{RequireUser: deny})

	for _, target := range []string{
		"/trips",
		"/trips/6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b",
		"/trips/6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b/memories",
		"/memories/6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b",
		"/users/6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b",
		"/awsUrl?filename=a.jpg&filetype=image/jpeg",
	} {
		rec := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
