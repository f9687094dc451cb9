package internal

import (
	"strings"
	"testing"
)

func TestChatSinkRecordsSuggestions(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))

	sink.Append(SuggestionsNode{Labels: []string{"Order now", "Track Order (Yalidine)"}})

	if len(sink.suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(sink.suggestions))
	}
	if sink.suggestions[1] != "Track Order (Yalidine)" {
		t.Errorf("suggestions = %v", sink.suggestions)
	}
	if !sink.dirty {
		t.Error("append should mark the sink dirty")
	}
}

func TestChatSinkAppendsRenderedEntries(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))

	sink.Append(TextNode{Role: RoleBot, Text: "hello there"})

	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.entries))
	}
	if !strings.Contains(sink.entries[0], "hello there") {
		t.Errorf("entry missing message text: %q", sink.entries[0])
	}
}

func TestChatSinkTypingAndNotice(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))

	sink.SetTyping(true)
	if !sink.typing {
		t.Error("typing not set")
	}
	sink.SetTyping(false)
	if sink.typing {
		t.Error("typing not cleared")
	}

	sink.Notify("Server error: 500")
	if sink.notice != "Server error: 500" {
		t.Errorf("notice = %q", sink.notice)
	}
}

func TestChatSinkQuickPicks(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))

	sink.Append(PartListNode{Parts: []NormalizedPart{{PartNo: "BP-1"}}, FoundCount: 1})
	sink.Append(SuggestionsNode{Labels: []string{"Track Order (Yalidine)"}})

	picks := sink.quickPicks()
	if len(picks) != 2 {
		t.Fatalf("got %d quick picks, want 2", len(picks))
	}
	if picks[0] != "Track order 123456789" {
		t.Errorf("picks[0] = %q, want the chip's example prompt", picks[0])
	}
	if picks[1] != "Tell me more about part BP-1" {
		t.Errorf("picks[1] = %q, want the part follow-up", picks[1])
	}

	// A new user message retires the quick picks
	sink.Append(TextNode{Role: RoleUser, Text: "next question"})
	if len(sink.quickPicks()) != 0 {
		t.Errorf("quick picks not cleared: %v", sink.quickPicks())
	}
}

func TestNewChatModelSeedsWelcome(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))
	controller := NewController(&fakeTransport{}, sink, testSessionID)

	NewChatModel(controller, sink)

	lines := sink.lines()
	if len(lines) < 2 {
		t.Fatalf("expected welcome banner and default chips, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Welcome to IMOBOT") {
		t.Errorf("first line is not the welcome banner: %q", lines[0])
	}
	if len(sink.suggestions) != len(DefaultSuggestions) {
		t.Errorf("default suggestions not recorded: %v", sink.suggestions)
	}
}

func TestChatSinkReRendersOnResize(t *testing.T) {
	sink := NewChatSink(NewRenderer(72))
	long := strings.Repeat("brake pads for Toyota Corolla ", 6)

	sink.Append(TextNode{Role: RoleBot, Text: long})
	wide := sink.entries[0]

	sink.SetWidth(30)

	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries after resize, want 1", len(sink.entries))
	}
	narrow := sink.entries[0]
	if narrow == wide {
		t.Error("entry not re-rendered at the new width")
	}
	if want := NewRenderer(30).Render(TextNode{Role: RoleBot, Text: long}); narrow != want {
		t.Errorf("resized entry = %q, want %q", narrow, want)
	}
	if !sink.dirty {
		t.Error("resize should mark the sink dirty")
	}
}
