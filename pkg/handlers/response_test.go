package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		errorCode  string
		message    string
	}{
		{"method not allowed", http.StatusMethodNotAllowed, "method_not_allowed", "use POST"},
		{"internal error", http.StatusInternalServerError, "internal_error", "failed to get hostname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := ErrorResponse(w, tt.statusCode, tt.errorCode, tt.message); err != nil {
				t.Fatalf("ErrorResponse returned error: %v", err)
			}

			if w.Code != tt.statusCode {
				t.Errorf("status code = %d, want %d", w.Code, tt.statusCode)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if body["error"] != tt.errorCode || body["message"] != tt.message {
				t.Errorf("body = %v, want error=%q message=%q", body, tt.errorCode, tt.message)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteJSON(w, http.StatusCreated, map[string]int{"count": 5}); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusCreated)
	}
	if got := w.Body.String(); got != "{\"count\":5}\n" {
		t.Errorf("body = %q", got)
	}
}

func TestWriteJSON_UnencodableDataWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteJSON(w, http.StatusOK, make(chan int)); err == nil {
		t.Fatal("expected error for unencodable data, got nil")
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
	if w.Header().Get("Content-Type") != "" {
		t.Error("expected no Content-Type on encoding failure")
	}
}
