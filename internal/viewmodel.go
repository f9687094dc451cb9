package internal

// Role identifies who a message bubble belongs to
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ViewNode is one renderable element of a conversation turn. Nodes are
// built fresh per turn by the Normalizer and never mutated afterwards.
type ViewNode interface {
	viewNode()
}

// TextNode is a plain message bubble
type TextNode struct {
	Role Role
	Text string
}

// PartListNode carries the normalized results of a part search.
// FoundCount is the backend-reported total, which may exceed len(Parts).
type PartListNode struct {
	Parts      []NormalizedPart
	FoundCount int
}

// OrderNode carries an order-tracking status
type OrderNode struct {
	Order OrderView
}

// CommandNode carries a command result, already flattened to text
type CommandNode struct {
	Body string
}

// EmptyNode is the fallback when a reply carried neither text nor data
type EmptyNode struct {
	Message string
}

// SuggestionsNode carries follow-up prompt chips, rendered after the
// rest of the turn
type SuggestionsNode struct {
	Labels []string
}

func (TextNode) viewNode()        {}
func (PartListNode) viewNode()    {}
func (OrderNode) viewNode()       {}
func (CommandNode) viewNode()     {}
func (EmptyNode) viewNode()       {}
func (SuggestionsNode) viewNode() {}

// Sink receives view nodes and indicator changes from the Controller.
// The chat TUI, the one-shot send command, and tests each provide one.
type Sink interface {
	// Append adds a node to the end of the message log
	Append(node ViewNode)
	// SetTyping shows or hides the typing indicator
	SetTyping(on bool)
	// Notify raises a transient, non-fatal notice outside the log
	Notify(message string)
}
