package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	m := New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/persons/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"a1", "b2", "c3"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/persons/"+id, nil))
	}

	out := scrape(t, m)
	assert.Contains(t, out, `http_requests_total{method="GET",path="/api/persons/{id}",status="404"} 3`)
	assert.Contains(t, out, `http_request_duration_seconds_count{method="GET",path="/api/persons/{id}"} 3`)
	assert.NotContains(t, out, `path="/api/persons/a1"`)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	m := New()
	h := m.Middleware(http.NewServeMux())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Contains(t, scrape(t, m), `http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}

func TestSetPeople(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetPeople(7)

	assert.Contains(t, scrape(t, m), "phonebook_people 7")
}

func TestRegistry_IncludesRuntimeCollectors(t *testing.T) {
	t.Parallel()

	out := scrape(t, New())
	assert.True(t, strings.Contains(out, "go_goroutines"), "expected Go runtime metrics")
}

func TestRouteLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/api/persons/{id}", routeLabel("GET /api/persons/{id}"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, unmatchedRoute, routeLabel(""))
}
