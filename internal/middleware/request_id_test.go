package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Fatal("expected a generated request ID")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("generated request ID should be a UUID, got %q", got)
	}
	if rec.Header().Get(RequestIDHeader) != got {
		t.Error("request ID should be echoed in the response header")
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got != "req-abc-123" {
		t.Errorf("expected incoming request ID to be preserved, got %q", got)
	}
}
