package cmd

import (
	"bytes"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/imobot-dz/imobot-cli/testutil"
)

func runHealthcheck(t *testing.T, endpoint string) error {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "state.db")
	rootCmd.SetArgs([]string{
		"healthcheck",
		"--endpoint", endpoint,
		"--state", statePath,
	})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd.Execute()
}

func TestHealthcheckAgainstMockBackend(t *testing.T) {
	backend := testutil.NewMockBackend(t, http.StatusOK, testutil.TextReply)

	if err := runHealthcheck(t, backend.BaseURL()); err != nil {
		t.Errorf("healthcheck failed against healthy backend: %v", err)
	}
}

func TestHealthcheckBackendDown(t *testing.T) {
	// Port 1 is never listening
	if err := runHealthcheck(t, "http://127.0.0.1:1"); err == nil {
		t.Error("healthcheck should fail when the backend is unreachable")
	}
}
