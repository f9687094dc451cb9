package internal

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SessionStore persists the session identifier in a one-table sqlite
// key-value database. Storage is best effort: a missing or broken
// database never prevents a session identifier from being issued.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by the database at path
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultStatePath returns the default state database location,
// <user config dir>/imobot/state.db
func DefaultStatePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "imobot", "state.db"), nil
}

// Path returns the state database location
func (s *SessionStore) Path() string {
	return s.path
}

// GetOrCreate returns the persisted session identifier, creating and
// persisting a fresh one when none exists. Idempotent: repeated calls
// against the same database return the same identifier. Never fails;
// on storage errors a fresh identifier is returned unpersisted.
func (s *SessionStore) GetOrCreate() string {
	db, err := s.open()
	if err != nil {
		LogWarn("state database unavailable, using ephemeral session: %v", err)
		return newSessionID()
	}
	defer db.Close()

	if stored, err := readItem(db, SessionKey); err == nil && stored != "" {
		return stored
	}

	id := newSessionID()
	if err := writeItem(db, SessionKey, id); err != nil {
		LogWarn("failed to persist session identifier: %v", err)
	}
	return id
}

// Reset drops the persisted session identifier so the next GetOrCreate
// issues a fresh one
func (s *SessionStore) Reset() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM ItemTable WHERE key = ?", SessionKey); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	return nil
}

// open opens the state database, creating the file and schema on first
// use
func (s *SessionStore) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, &StorageError{Path: s.path, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "open", Err: err}
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS ItemTable (key TEXT PRIMARY KEY, value TEXT)"); err != nil {
		db.Close()
		return nil, &StorageError{Path: s.path, Op: "open", Err: err}
	}

	return db, nil
}

func readItem(db *sql.DB, key string) (string, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value.String, nil
}

func writeItem(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		"INSERT INTO ItemTable (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// newSessionID synthesizes an identifier of the form
// session_<epoch-ms>_<8-char base36 suffix>
func newSessionID() string {
	var suffix strings.Builder
	for i := 0; i < 8; i++ {
		suffix.WriteByte(base36[rand.Intn(len(base36))])
	}
	return fmt.Sprintf("session_%s_%s",
		strconv.FormatInt(time.Now().UnixMilli(), 10), suffix.String())
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
