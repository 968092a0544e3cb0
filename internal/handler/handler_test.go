package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_NotFound(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	body := decodeErrorResponse(t, rec)
	if body.Status != "error" || body.Description != "resource not found" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodPut, "/ads/1", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	body := decodeErrorResponse(t, rec)
	if body.Description != "method not allowed" {
		t.Errorf("unexpected message: %q", body.Description)
	}
}
