package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/imobot-dz/imobot-cli/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration, local state, and backend connectivity",
	Long: `Check the health of the imobot client by verifying:
  • Configuration resolution
  • State database access (session identity)
  • Backend reachability via its health endpoint

This command is useful for debugging connectivity issues before
starting a chat session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 IMOBOT Health Check"))
		fmt.Println()

		// Step 1: Configuration
		fmt.Println(infoStyle.Render("Step 1: Resolving configuration..."))
		cfg, err := loadClientConfig()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to load configuration:"), err)
			return err
		}
		fmt.Println(successStyle.Render("✅ Configuration loaded"))
		fmt.Printf("   Base URL: %s\n", cfg.BaseURL)
		fmt.Printf("   Timeout:  %ds\n", cfg.TimeoutSeconds)
		fmt.Println()

		// Step 2: State database
		fmt.Println(infoStyle.Render("Step 2: Checking state database..."))
		store, err := openSessionStore()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to resolve state path:"), err)
			return err
		}
		sessionID := store.GetOrCreate()
		again := store.GetOrCreate()
		if sessionID == again {
			fmt.Println(successStyle.Render("✅ Session identity is stable"))
			fmt.Printf("   Session: %s\n", sessionID)
			fmt.Printf("   State:   %s\n", store.Path())
		} else {
			fmt.Println(warningStyle.Render("⚠️  Session identity is not persisting"))
			fmt.Println("   The state database may be unwritable; sessions will not")
			fmt.Println("   survive restarts, but chat still works.")
		}
		fmt.Println()

		// Step 3: Backend
		fmt.Println(infoStyle.Render("Step 3: Checking backend..."))
		transport := internal.NewHTTPTransport(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		status, err := transport.CheckHealth(ctx)
		backendOK := err == nil
		if backendOK {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Backend reachable (status: %s)", status)))
		} else {
			fmt.Println(errorStyle.Render("❌ Backend unreachable:"), err)
			fmt.Printf("   Endpoint: %s\n", cfg.HealthEndpoint())
		}
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()
		if backendOK {
			fmt.Println(successStyle.Render("✅ Health check passed!"))
			fmt.Println(successStyle.Render("   • Backend: Reachable"))
			fmt.Println(successStyle.Render("   • Session: " + sessionID))
			return nil
		}
		fmt.Println(errorStyle.Render("❌ Health check failed"))
		fmt.Println("   • The backend did not answer its health endpoint")
		fmt.Println("   • Check base_url in the config file or the --endpoint flag")
		return fmt.Errorf("health check failed: backend unreachable")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
