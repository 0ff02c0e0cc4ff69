package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}

func TestWriteErrorBodyKeepsExtraFields(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/players", nil)
	writeErrorBody(rr, req, http.StatusUnprocessableEntity, map[string]any{
		"error":  "invalid",
		"fields": map[string]string{"name": "name required"},
	}, nil)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["fields"] == nil || body["error"] != "invalid" {
		t.Fatalf("expected fields preserved, got %+v", body)
	}
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no requestId without a request id")
	}
}

func TestDecodeJSON(t *testing.T) {
	var dest struct {
		Term string `json:"term"`
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"term":"judge"}`))
	if err := decodeJSON(rr, req, &dest); err != nil || dest.Term != "judge" {
		t.Fatalf("expected decode, got %q err %v", dest.Term, err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if err := decodeJSON(rr, req, &dest); err == nil || err.Error() != "request body required" {
		t.Fatalf("expected body required error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{nope"))
	if err := decodeJSON(rr, req, &dest); err == nil || !strings.Contains(err.Error(), "invalid JSON body") {
		t.Fatalf("expected invalid JSON error, got %v", err)
	}
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	var dest map[string]string
	payload := `{"term":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	if err := decodeJSON(rr, req, &dest); err == nil {
		t.Fatalf("expected error for oversized body")
	}
}
