package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockBackend is a scripted stand-in for the chat backend
type MockBackend struct {
	Server *httptest.Server

	// Requests records every decoded chat request body in order
	Requests []map[string]any

	status int
	body   string
}

// NewMockBackend starts a backend that answers /api/chat with the
// given status and body, and /api/health with a healthy status. The
// server is shut down when the test finishes.
func NewMockBackend(t *testing.T, status int, body string) *MockBackend {
	t.Helper()

	mb := &MockBackend{status: status, body: body}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			mb.Requests = append(mb.Requests, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mb.status)
		_, _ = w.Write([]byte(mb.body))
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2024-01-01T00:00:00Z"}`))
	})

	mb.Server = httptest.NewServer(mux)
	t.Cleanup(mb.Server.Close)
	return mb
}

// BaseURL returns the mock backend's base URL
func (mb *MockBackend) BaseURL() string {
	return mb.Server.URL
}
