package internal

import "fmt"

// ServerError represents a response received with a non-success status
type ServerError struct {
	StatusCode int
	Body       string // best-effort diagnostic text, may be empty
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error: status %d: %s", e.StatusCode, e.Body)
}

// NetworkError represents a request that produced no usable response:
// connection failure, timeout, or a success status with an unparseable
// body. All are unrecoverable within the turn.
type NetworkError struct {
	Op  string // "send", "read", "decode"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing the local state database.
// The session store swallows these; they surface only in diagnostics.
type StorageError struct {
	Path string
	Op   string // "open", "read", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConfigError represents an unreadable or invalid configuration file
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
