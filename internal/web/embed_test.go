package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServeIndex(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cc := resp.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Fatalf("index should not be cached: %s", cc)
	}
	if !strings.Contains(resp.Body.String(), "chatkit-root") {
		t.Fatal("index.html is missing the widget mount point")
	}
}

func TestServeAsset(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cc := resp.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age") {
		t.Fatalf("assets should be cacheable: %s", cc)
	}
}

func TestUnknownPathFallsBackToIndex(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 fallback, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "chatkit-root") {
		t.Fatal("fallback should serve index.html")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}
