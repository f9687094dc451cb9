package cmd

import (
	"bytes"
	"net/http"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/imobot-dz/imobot-cli/testutil"
)

func runSend(t *testing.T, backend *testutil.MockBackend, message string) error {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "state.db")
	rootCmd.SetArgs([]string{
		"send",
		"--endpoint", backend.BaseURL(),
		"--state", statePath,
		message,
	})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd.Execute()
}

func TestSendCommand(t *testing.T) {
	backend := testutil.NewMockBackend(t, http.StatusOK, testutil.PartsReply)

	if err := runSend(t, backend, "Find brake pads for Toyota Corolla 2020"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if len(backend.Requests) != 1 {
		t.Fatalf("backend saw %d requests, want 1", len(backend.Requests))
	}
	req := backend.Requests[0]
	if req["message"] != "Find brake pads for Toyota Corolla 2020" {
		t.Errorf("message = %v", req["message"])
	}

	sessionID, _ := req["sessionId"].(string)
	if !regexp.MustCompile(`^session_\d+_[0-9a-z]{8}$`).MatchString(sessionID) {
		t.Errorf("sessionId = %q, want session_<ms>_<suffix> format", sessionID)
	}
}

func TestSendCommandServerError(t *testing.T) {
	backend := testutil.NewMockBackend(t, http.StatusInternalServerError, "boom")

	if err := runSend(t, backend, "hello"); err == nil {
		t.Error("send should report failure on server error")
	}
}

func TestSendCommandEmptyReply(t *testing.T) {
	backend := testutil.NewMockBackend(t, http.StatusOK, testutil.EmptyReply)

	// An empty reply degrades to the fallback message; the turn itself
	// succeeds
	if err := runSend(t, backend, "hello"); err != nil {
		t.Errorf("send failed on empty reply: %v", err)
	}
}
