package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func bodyEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBodyLimitRejectsOversizedMutation(t *testing.T) {
	handler := BodyLimit(16)(bodyEcho())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(strings.Repeat("x", 64)))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized POST: expected 413, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/tasks/1", strings.NewReader("small"))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("small PUT: expected 200, got %d", rec.Code)
	}
}

func TestBodyLimitIgnoresReads(t *testing.T) {
	handler := BodyLimit(16)(bodyEcho())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", strings.NewReader(strings.Repeat("x", 64)))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET must not be limited, got %d", rec.Code)
	}
}
