package cmd

import (
	"fmt"
	"os"

	"github.com/imobot-dz/imobot-cli/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	baseURL    string
	statePath  string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imobot",
	Short: "Terminal client for the IMOBOT spare-parts assistant",
	Long: `A terminal chat client for the IMOBOT spare-parts assistant.

IMOBOT helps you search Algerian spare-parts inventory, look up parts
by serial number, and track Yalidine orders, all through a
conversational interface.

Features:
  • Interactive chat session with part cards and order tracking
  • One-shot message sending for scripting
  • Persistent per-machine session identity (the backend keeps context)
  • Suggestion chips for common queries

Quick Start:
  imobot chat                               # Start an interactive session
  imobot send "Find brake pads for Clio"    # Send a single message
  imobot session show                       # Inspect the session identity
  imobot healthcheck                        # Verify backend connectivity

Configuration lives in <config-dir>/imobot/config.yaml (base_url,
timeout_seconds); --endpoint overrides it per invocation.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")
	rootCmd.PersistentFlags().StringVar(&baseURL, "endpoint", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Custom state database location")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadClientConfig resolves the effective config: file (or defaults)
// plus flag overrides
func loadClientConfig() (*internal.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = internal.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}

// openSessionStore resolves the state database location and returns
// the store
func openSessionStore() (*internal.SessionStore, error) {
	path := statePath
	if path == "" {
		var err error
		path, err = internal.DefaultStatePath()
		if err != nil {
			return nil, err
		}
	}
	return internal.NewSessionStore(path), nil
}
