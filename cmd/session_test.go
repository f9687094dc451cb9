package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestSessionShowAndReset(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.db")

	run := func(args ...string) error {
		rootCmd.SetArgs(append(args, "--state", statePath))
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		return rootCmd.Execute()
	}

	if err := run("session", "show"); err != nil {
		t.Fatalf("session show failed: %v", err)
	}
	if err := run("session", "reset"); err != nil {
		t.Fatalf("session reset failed: %v", err)
	}
	if err := run("session", "show"); err != nil {
		t.Fatalf("session show after reset failed: %v", err)
	}
}
