package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/logging"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected incoming request id in context, got %q", got)
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request-scoped logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/players/7/description", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected request id echoed in response header")
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected completion log with status, got %q", out)
	}
	if got := rec.Snapshot("http").Calls; got != 0 {
		t.Fatalf("expected no data source metrics recorded, got %d", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenInvalid(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "has spaces")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if seen == "" || seen == "has spaces" {
		t.Fatalf("expected generated request id, got %q", seen)
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected header to match context id")
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	handler := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := testutil.Serve(handler, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/health", "/health"},
		{"/dashboard", "/dashboard"},
		{"/dashboard/search", "/dashboard/search"},
		{"/dashboard/players", "/dashboard/players"},
		{"/dashboard/players/12", "/dashboard/players/:id"},
		{"/dashboard/players/12/delete", "/dashboard/players/:id/delete"},
		{"/dashboard/players/3/description", "/dashboard/players/:id/description"},
		{"/dashboard/deletes/0b5e-token", "/dashboard/deletes/:token"},
		{"/dashboard/page-size?x=1", "/dashboard/page-size"},
		{"/other/players/1", "/other/players/1"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
