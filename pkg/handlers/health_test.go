package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/config"
)

func newTestHealthHandler() *HealthHandler {
	cfg := &config.Config{
		Version:   "test-version",
		Env:       "test",
		Transport: config.TransportHTTP,
	}
	return NewHealthHandler(cfg, zap.NewNop())
}

func TestHealthHandler_Health(t *testing.T) {
	handler := newTestHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body 'ok', got %q", rec.Body.String())
	}
}

func TestHealthHandler_Ping(t *testing.T) {
	handler := newTestHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	handler.Ping(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response PingResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", response.Status)
	}
	if response.Service != ServiceName {
		t.Errorf("expected service %q, got %q", ServiceName, response.Service)
	}
	if response.Version != "test-version" {
		t.Errorf("expected version 'test-version', got %q", response.Version)
	}
	if response.Transport != config.TransportHTTP {
		t.Errorf("expected transport %q, got %q", config.TransportHTTP, response.Transport)
	}
	if response.Environment != "test" {
		t.Errorf("expected environment 'test', got %q", response.Environment)
	}
	if response.GoVersion != runtime.Version() {
		t.Errorf("expected go version %q, got %q", runtime.Version(), response.GoVersion)
	}
	if response.Hostname == "" {
		t.Error("expected hostname to be set")
	}
}

func TestHealthHandler_RegisterRoutes(t *testing.T) {
	handler := newTestHealthHandler()
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	for _, path := range []string{"/health", "/ping"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health: expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
