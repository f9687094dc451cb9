package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport sends one turn to the backend and returns the raw reply
type Transport interface {
	Send(ctx context.Context, turn OutboundTurn) (*RawReply, error)
}

// HTTPTransport talks JSON over HTTP to the chat backend. One request
// per turn, no retries; retry policy belongs to whoever calls it.
type HTTPTransport struct {
	endpoint  string
	healthURL string
	client    *http.Client
}

// NewHTTPTransport creates a transport for the backend described by cfg
func NewHTTPTransport(cfg *Config) *HTTPTransport {
	return &HTTPTransport{
		endpoint:  cfg.ChatEndpoint(),
		healthURL: cfg.HealthEndpoint(),
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Send posts the turn to the chat endpoint. Outcomes: a parsed reply; a
// *ServerError for any non-2xx status (body kept for diagnostics); a
// *NetworkError when no response arrived or a success body failed to
// parse as JSON.
func (t *HTTPTransport) Send(ctx context.Context, turn OutboundTurn) (*RawReply, error) {
	body, err := json.Marshal(turn)
	if err != nil {
		return nil, &NetworkError{Op: "send", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Op: "send", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	LogDebug("POST %s (%d bytes)", t.endpoint, len(body))

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body is read best effort; it is not required to be JSON
		diag, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			diag = nil
		}
		return nil, &ServerError{StatusCode: resp.StatusCode, Body: string(diag)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read", Err: err}
	}

	var reply RawReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, &NetworkError{Op: "decode", Err: err}
	}

	return &reply, nil
}

// CheckHealth calls the backend health endpoint and returns its
// reported status string
func (t *HTTPTransport) CheckHealth(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.healthURL, nil)
	if err != nil {
		return "", &NetworkError{Op: "send", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &NetworkError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ServerError{StatusCode: resp.StatusCode}
	}

	var status struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", &NetworkError{Op: "decode", Err: err}
	}
	if status.Status == "" {
		return "", fmt.Errorf("health response missing status")
	}

	return status.Status, nil
}
