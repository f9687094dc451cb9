package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTransport(url string) *HTTPTransport {
	return NewHTTPTransport(&Config{BaseURL: url, TimeoutSeconds: 5})
}

func TestTransportSendSuccess(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"hello","type":"text"}`))
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	reply, err := transport.Send(context.Background(), OutboundTurn{
		Message:   "hi",
		SessionID: "session_1_abcdefgh",
	})
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if gotPath != "/api/chat" {
		t.Errorf("path = %q, want /api/chat", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["message"] != "hi" || gotBody["sessionId"] != "session_1_abcdefgh" {
		t.Errorf("request body = %v", gotBody)
	}
	if reply.Reply != "hello" || reply.Type != "text" {
		t.Errorf("reply = %+v", reply)
	}
}

func TestTransportSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database down", http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	_, err := transport.Send(context.Background(), OutboundTurn{Message: "hi"})

	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("error = %v (%T), want *ServerError", err, err)
	}
	if serverErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", serverErr.StatusCode)
	}
	if serverErr.Body == "" {
		t.Error("diagnostic body should be captured best-effort")
	}
}

func TestTransportSendNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening any more

	transport := newTestTransport(server.URL)
	_, err := transport.Send(context.Background(), OutboundTurn{Message: "hi"})

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v (%T), want *NetworkError", err, err)
	}
}

func TestTransportSendUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	_, err := transport.Send(context.Background(), OutboundTurn{Message: "hi"})

	// Treated like a network failure: unrecoverable this turn
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v (%T), want *NetworkError", err, err)
	}
	if netErr.Op != "decode" {
		t.Errorf("Op = %q, want decode", netErr.Op)
	}
}

func TestTransportCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2024-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	status, err := transport.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth() error: %v", err)
	}
	if status != "healthy" {
		t.Errorf("status = %q, want healthy", status)
	}
}

func TestTransportCheckHealthDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	if _, err := transport.CheckHealth(context.Background()); err == nil {
		t.Error("CheckHealth() should fail on non-200 status")
	}
}
