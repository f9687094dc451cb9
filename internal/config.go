package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL targets the local development backend
	DefaultBaseURL = "http://127.0.0.1:5000"

	chatPath   = "/api/chat"
	healthPath = "/api/health"

	defaultTimeoutSeconds = 30
)

// Config holds client settings loaded from the optional YAML config
// file. Production deployments point base_url at the hosted backend;
// the zero value targets local development.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfigPath returns <user config dir>/imobot/config.yaml
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "imobot", "config.yaml"), nil
}

// LoadConfig reads the config file at path. A missing file is not an
// error: defaults apply. An unreadable or invalid file is.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	return cfg, nil
}

// ChatEndpoint returns the full chat endpoint URL
func (c *Config) ChatEndpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + chatPath
}

// HealthEndpoint returns the full health endpoint URL
func (c *Config) HealthEndpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + healthPath
}
