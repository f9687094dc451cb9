package cmd

import (
	"fmt"

	"github.com/imobot-dz/imobot-cli/internal"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the IMOBOT assistant.

The session opens with a welcome message and suggestion chips. While
the assistant is thinking, new submissions are held off; the reply is
rendered as message bubbles, part cards, or order-tracking cards
depending on what the backend returns.

Keys:
  enter    send the current input
  1-9      copy a suggestion chip into the input (when input is empty)
  esc      quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}

		store, err := openSessionStore()
		if err != nil {
			return err
		}
		sessionID := store.GetOrCreate()
		internal.LogDebug("using session %s against %s", sessionID, cfg.BaseURL)

		transport := internal.NewHTTPTransport(cfg)
		sink := internal.NewChatSink(internal.NewRenderer(72))
		controller := internal.NewController(transport, sink, sessionID)

		program := internal.NewChatProgram(controller, sink)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("chat session failed: %w", err)
		}

		counters := controller.Counters()
		internal.LogInfo("session ended: %d turns, %d parts found", counters.Turns, counters.PartsFound)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
