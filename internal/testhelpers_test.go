package internal

import (
	"context"
	"fmt"
)

// fakeTransport returns a scripted outcome and records every turn it
// was asked to send
type fakeTransport struct {
	turns []OutboundTurn
	reply *RawReply
	err   error
}

func (f *fakeTransport) Send(ctx context.Context, turn OutboundTurn) (*RawReply, error) {
	f.turns = append(f.turns, turn)
	return f.reply, f.err
}

// memorySink records everything the controller dispatched, plus a
// flat event log so tests can assert ordering across node appends and
// indicator changes
type memorySink struct {
	nodes   []ViewNode
	notices []string
	events  []string
}

func (s *memorySink) Append(node ViewNode) {
	s.nodes = append(s.nodes, node)
	s.events = append(s.events, fmt.Sprintf("append:%T", node))
}

func (s *memorySink) SetTyping(on bool) {
	if on {
		s.events = append(s.events, "typing:on")
	} else {
		s.events = append(s.events, "typing:off")
	}
}

func (s *memorySink) Notify(message string) {
	s.notices = append(s.notices, message)
	s.events = append(s.events, "notify")
}

// textNodes filters the recorded nodes down to text bubbles
func (s *memorySink) textNodes() []TextNode {
	var out []TextNode
	for _, node := range s.nodes {
		if tn, ok := node.(TextNode); ok {
			out = append(out, tn)
		}
	}
	return out
}
