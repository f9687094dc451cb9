package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/imobot-dz/imobot-cli/internal"
	"github.com/spf13/cobra"
)

var (
	sessionIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	sessionPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the persistent session identity",
	Long: `Inspect or reset the session identifier this client sends with every
message. The backend uses it to keep conversational context, so
resetting it starts the conversation over from the backend's point of
view.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session identifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSessionStore()
		if err != nil {
			return err
		}

		id := store.GetOrCreate()
		fmt.Println(sessionIDStyle.Render(id))
		fmt.Println(sessionPathStyle.Render("state: " + store.Path()))
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the session identifier so a fresh one is issued",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSessionStore()
		if err != nil {
			return err
		}

		if err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}

		id := store.GetOrCreate()
		internal.LogInfo("session reset")
		fmt.Println("New session:", sessionIDStyle.Render(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
}
