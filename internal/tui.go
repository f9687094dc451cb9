package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSuggestions are the chips offered with the welcome message
var DefaultSuggestions = []string{
	"Search Parts (Find by vehicle or part)",
	"Serial Lookup (Enter part number)",
	"Track Order (Yalidine)",
	"Daily Report (Inventory summary)",
}

const (
	welcomeTitle    = "🚀 Welcome to IMOBOT v3.0"
	welcomeSubtitle = "Your intelligent Algerian spare parts assistant powered by AI"
	typingText      = "IMOBOT is thinking"
)

var (
	titleBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Padding(0, 1)

	welcomeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 2)

	typingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// ChatSink accumulates rendered log entries for the chat view. The
// controller writes into it; the model reads it back out. Everything
// runs on the bubbletea update goroutine, so no locking is needed.
type ChatSink struct {
	renderer *Renderer

	banner      string
	nodes       []ViewNode
	entries     []string
	typing      bool
	notice      string
	suggestions []string
	parts       []NormalizedPart
	dirty       bool
}

// NewChatSink creates a sink rendering through the given renderer
func NewChatSink(renderer *Renderer) *ChatSink {
	return &ChatSink{renderer: renderer}
}

// Append renders the node and adds it to the log
func (s *ChatSink) Append(node ViewNode) {
	switch n := node.(type) {
	case TextNode:
		// A new user message retires the previous turn's quick picks
		if n.Role == RoleUser {
			s.suggestions = nil
			s.parts = nil
		}
	case SuggestionsNode:
		s.suggestions = n.Labels
	case PartListNode:
		s.parts = n.Parts
		if len(s.parts) > maxPartCards {
			s.parts = s.parts[:maxPartCards]
		}
		s.suggestions = nil
	}
	s.nodes = append(s.nodes, node)
	s.entries = append(s.entries, s.renderer.Render(node))
	s.dirty = true
}

// SetWidth swaps in a renderer for the new width and re-renders the
// whole log, so earlier entries pick up the new wrap width too
func (s *ChatSink) SetWidth(width int) {
	s.renderer = NewRenderer(width)
	s.entries = s.entries[:0]
	for _, node := range s.nodes {
		s.entries = append(s.entries, s.renderer.Render(node))
	}
	s.dirty = true
}

// lines is the full scrollback: the welcome banner, then the log
func (s *ChatSink) lines() []string {
	if s.banner == "" {
		return s.entries
	}
	return append([]string{s.banner}, s.entries...)
}

// quickPicks lists the follow-up prompts the digit keys select: the
// current suggestion chips first, then the rendered part cards
func (s *ChatSink) quickPicks() []string {
	var picks []string
	for _, label := range s.suggestions {
		picks = append(picks, SuggestionPrompt(label))
	}
	for _, part := range s.parts {
		picks = append(picks, PartFollowUp(part))
	}
	return picks
}

// SetTyping shows or hides the typing indicator
func (s *ChatSink) SetTyping(on bool) {
	s.typing = on
	s.dirty = true
}

// Notify sets the transient notice line
func (s *ChatSink) Notify(message string) {
	s.notice = message
	s.dirty = true
}

// replyMsg carries a resolved turn outcome back into Update
type replyMsg Outcome

// ChatModel is the interactive chat session. It owns the scrollback
// viewport, the input box, and the typing spinner; all conversation
// logic stays in the Controller.
type ChatModel struct {
	controller *Controller
	sink       *ChatSink

	viewport viewport.Model
	input    textarea.Model
	spin     spinner.Model

	width  int
	height int
	ready  bool
}

// NewChatModel creates the chat session model and seeds the welcome
// message plus the default suggestion chips
func NewChatModel(controller *Controller, sink *ChatSink) ChatModel {
	input := textarea.New()
	input.Placeholder = "Ask about spare parts, serial numbers, or orders..."
	input.Prompt = "┃ "
	input.CharLimit = 2000
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))

	sink.banner = welcomeStyle.Render(
		welcomeTitle + "\n" + dimStyle.Render(welcomeSubtitle))
	sink.Append(SuggestionsNode{Labels: DefaultSuggestions})

	return ChatModel{
		controller: controller,
		sink:       sink,
		input:      input,
		spin:       s,
	}
}

// NewChatProgram wraps the model in a tea.Program
func NewChatProgram(controller *Controller, sink *ChatSink) *tea.Program {
	return tea.NewProgram(NewChatModel(controller, sink), tea.WithAltScreen())
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sink.SetWidth(msg.Width - 6)
		m.input.SetWidth(msg.Width - 2)
		chrome := lipgloss.Height(m.input.View()) + 5
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			// On an empty input, digits pick a suggestion chip or a
			// part card; the derived prompt lands in the input, it is
			// never auto-submitted
			if strings.TrimSpace(m.input.Value()) == "" {
				picks := m.sink.quickPicks()
				idx := int(msg.String()[0] - '1')
				if idx < len(picks) {
					m.input.SetValue(picks[idx])
					m.input.CursorEnd()
					break
				}
			}
			fallthrough
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case replyMsg:
		m.controller.Complete(Outcome(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.ready && m.sink.dirty {
		m.viewport.SetContent(strings.Join(m.sink.lines(), "\n\n"))
		m.viewport.GotoBottom()
		m.sink.dirty = false
	}

	return m, tea.Batch(cmds...)
}

// submit forwards the input to the controller and, when accepted,
// schedules the network call. Rejections (empty input, turn already in
// flight) leave the input untouched.
func (m *ChatModel) submit() tea.Cmd {
	text := m.input.Value()
	if !m.controller.Submit(text) {
		return nil
	}
	m.input.Reset()
	m.sink.notice = ""
	controller := m.controller
	return func() tea.Msg {
		return replyMsg(controller.Resolve(context.Background()))
	}
}

func (m ChatModel) View() string {
	if !m.ready {
		return "Starting IMOBOT..."
	}

	var b strings.Builder
	b.WriteString(titleBarStyle.Render("IMOBOT · spare parts assistant"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.sink.typing {
		b.WriteString(typingStyle.Render(m.spin.View() + " " + typingText))
	} else if m.sink.notice != "" {
		b.WriteString(noticeStyle.Render("⚠ " + m.sink.notice))
	} else {
		counters := m.controller.Counters()
		b.WriteString(statusLineStyle.Render(
			fmt.Sprintf("turns: %d · parts found: %d", counters.Turns, counters.PartsFound)))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send · 1-9 pick a suggestion or part · esc quit"))
	return b.String()
}
