package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Infinityagi/chatkit-starter/internal/config"
	"github.com/Infinityagi/chatkit-starter/internal/model/widget"
	chatkitService "github.com/Infinityagi/chatkit-starter/internal/service/chatkit"
	"github.com/Infinityagi/chatkit-starter/internal/service/visitor"
)

func testRouter() http.Handler {
	sessions := chatkitService.NewService(config.ChatKitConfig{TimeoutSeconds: 5})
	visitors := visitor.NewService(config.CookieConfig{Name: "chatkit_user_id", MaxAge: 3600})
	return NewRouter("test", sessions, visitors, widget.NewMemoryStore(widget.Seed()))
}

func TestHealthRoute(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if payload["status"] != "ok" || payload["version"] != "test" {
		t.Fatalf("unexpected health payload: %v", payload)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/chatkit/session", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", resp.Code)
	}
	if origin := resp.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin: %s", origin)
	}
}

func TestFrontendFallback(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected html at /, got %s", resp.Header().Get("Content-Type"))
	}
}
