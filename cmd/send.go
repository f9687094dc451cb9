package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/imobot-dz/imobot-cli/internal"
	"github.com/spf13/cobra"
)

// stdoutSink prints rendered nodes straight to standard output, for
// one-shot use outside the interactive session
type stdoutSink struct {
	renderer   *internal.Renderer
	lastNotice string
}

func (s *stdoutSink) Append(node internal.ViewNode) {
	fmt.Println(s.renderer.Render(node))
}

func (s *stdoutSink) SetTyping(on bool) {
	// No typing indicator in one-shot mode
}

func (s *stdoutSink) Notify(message string) {
	s.lastNotice = message
}

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send a single message and print the reply",
	Long: `Send one message to the IMOBOT assistant, print the rendered reply,
and exit. The persistent session identity is used, so the backend keeps
conversational context across invocations.

Examples:
  imobot send "Find brake pads for Toyota Corolla 2020"
  imobot send Part number 35001110XKV08B
  imobot send "Track order 123456789"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}

		store, err := openSessionStore()
		if err != nil {
			return err
		}
		sessionID := store.GetOrCreate()

		transport := internal.NewHTTPTransport(cfg)
		sink := &stdoutSink{renderer: internal.NewRenderer(72)}
		controller := internal.NewController(transport, sink, sessionID)

		if !controller.Exchange(context.Background(), message) {
			return fmt.Errorf("nothing to send")
		}

		if sink.lastNotice != "" {
			return fmt.Errorf("turn failed: %s", sink.lastNotice)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
