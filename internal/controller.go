package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ControllerState is the turn-cycle state of the conversation
type ControllerState int

const (
	// StateIdle accepts new submissions
	StateIdle ControllerState = iota
	// StateSending has one request in flight and rejects submissions
	StateSending
)

// User-facing failure messages
const (
	serverErrorMessage  = "⚠️ Server error (%d). Please try again."
	connectivityMessage = "🔌 Connection error. Please check that the IMOBOT backend is reachable."
)

// Outcome is the result of resolving one in-flight turn
type Outcome struct {
	Reply *RawReply
	Err   error
}

// Controller orchestrates conversation turns: it guards submissions,
// drives the typing indicator, runs the transport, classifies the
// reply, and dispatches view nodes to the sink. All state mutation
// happens in Submit and Complete, which the owner must call from a
// single goroutine; Resolve only performs the network call and may run
// elsewhere.
type Controller struct {
	transport Transport
	norm      *Normalizer
	sink      Sink
	sessionID string

	state    ControllerState
	pending  OutboundTurn
	counters Counters
}

// NewController creates a controller bound to its collaborators
func NewController(transport Transport, sink Sink, sessionID string) *Controller {
	return &Controller{
		transport: transport,
		norm:      NewNormalizer(),
		sink:      sink,
		sessionID: sessionID,
		counters:  Counters{StartedAt: time.Now()},
	}
}

// SessionID returns the session identifier sent with every turn
func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns the current turn-cycle state
func (c *Controller) State() ControllerState {
	return c.state
}

// Counters returns a snapshot of the running totals
func (c *Controller) Counters() Counters {
	return c.counters
}

// Submit begins a turn for the given input. Empty input and
// submissions while a turn is in flight are silently rejected. On
// acceptance the user bubble is appended before any network activity,
// the turn counter advances, and the typing indicator comes on.
func (c *Controller) Submit(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if c.state != StateIdle {
		LogDebug("submission rejected: turn already in flight")
		return false
	}

	c.sink.Append(TextNode{Role: RoleUser, Text: trimmed})
	c.counters.Turns++
	c.sink.SetTyping(true)
	c.pending = OutboundTurn{Message: trimmed, SessionID: c.sessionID}
	c.state = StateSending
	return true
}

// Resolve performs the network call for the turn begun by the last
// accepted Submit. It never mutates controller state, so it is safe to
// run off the UI goroutine. There is no cancellation of a sent
// request beyond ctx; whatever outcome arrives must be fed to
// Complete.
func (c *Controller) Resolve(ctx context.Context) Outcome {
	reply, err := c.transport.Send(ctx, c.pending)
	return Outcome{Reply: reply, Err: err}
}

// Complete applies a turn outcome and returns the controller to idle.
// The typing indicator is removed before anything else so it can never
// outlive the turn. The message log is append-only: failures add a bot
// message, they never roll back the user bubble.
func (c *Controller) Complete(out Outcome) {
	c.sink.SetTyping(false)
	c.state = StateIdle

	if out.Err != nil {
		c.completeFailure(out.Err)
		return
	}
	if out.Reply == nil {
		out.Reply = &RawReply{}
	}

	nodes, suggestions := c.norm.Classify(out.Reply)
	for _, node := range nodes {
		if parts, ok := node.(PartListNode); ok {
			c.counters.PartsFound += parts.FoundCount
		}
		c.sink.Append(node)
	}
	if len(suggestions) > 0 {
		c.sink.Append(SuggestionsNode{Labels: suggestions})
	}
	c.counters.Turns++
}

func (c *Controller) completeFailure(err error) {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		LogError("server error: status %d", serverErr.StatusCode)
		c.sink.Append(TextNode{Role: RoleBot, Text: fmt.Sprintf(serverErrorMessage, serverErr.StatusCode)})
		c.sink.Notify(fmt.Sprintf("Server error: %d", serverErr.StatusCode))
		return
	}

	LogError("network error: %v", err)
	c.sink.Append(TextNode{Role: RoleBot, Text: connectivityMessage})
	c.sink.Notify("Network error - is the backend running?")
}

// Exchange runs one full turn synchronously: Submit, Resolve,
// Complete. Returns false if the submission was rejected.
func (c *Controller) Exchange(ctx context.Context, text string) bool {
	if !c.Submit(text) {
		return false
	}
	c.Complete(c.Resolve(ctx))
	return true
}
