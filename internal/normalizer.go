package internal

import (
	"encoding/json"
	"strings"
)

// Reply type tags the backend is known to emit
const (
	ReplyTypeParts   = "parts"
	ReplyTypeOrder   = "order"
	ReplyTypeCommand = "command"
	ReplyTypeText    = "text"
)

// stockMarker prefixes internal stock-level annotations in reply text.
// Lines carrying it are redacted from display; raw stock numbers reach
// the user through part cards, not prose.
const stockMarker = "📊 Stock:"

// emptyReplyFallback is shown when a reply carried neither text nor data
const emptyReplyFallback = "I did not understand the response from the server. Please try rephrasing."

const defaultCourier = "Yalidine"

// Normalizer converts arbitrary backend replies into view nodes.
// All methods are pure and total: no input causes a failure.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizePart maps one raw part object to the canonical record. For
// each attribute the first present alias wins; see the field chains
// below. Missing or unparseable quantities default to 0, missing prices
// stay nil.
func (n *Normalizer) NormalizePart(raw map[string]any) NormalizedPart {
	return NormalizedPart{
		ID:          pickString(raw, "id", "_id"),
		PartNo:      pickString(raw, "part_no", "partNumber", "serial", "part"),
		Brand:       pickString(raw, "brand", "make", "manufacturer"),
		Model:       pickString(raw, "model", "vehicle_model"),
		Description: pickString(raw, "description", "desc", "name"),
		Qty:         coerceInt(raw, 0, "qty", "quantity"),
		UnitPrice:   coerceNumber(raw, "unit_price", "price"),
	}
}

// normalizeOrder maps a raw order object to the canonical view
func (n *Normalizer) normalizeOrder(raw map[string]any) OrderView {
	status := pickString(raw, "status")
	if status == "" {
		status = "Unknown"
	}
	courier := pickString(raw, "courier")
	if courier == "" {
		courier = defaultCourier
	}
	order := OrderView{
		Status:     status,
		LastUpdate: pickString(raw, "last_update"),
		Courier:    courier,
		TrackingID: pickString(raw, "tracking_id", "tracking", "id"),
	}
	if history, ok := raw["history"].([]any); ok {
		for _, entry := range history {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			order.History = append(order.History, OrderEvent{
				Date:  pickString(m, "date"),
				Event: pickString(m, "event"),
			})
		}
	}
	return order
}

// Classify converts a backend reply into an ordered list of view nodes
// plus any suggestion labels. The rules are independent: a reply may
// yield both a text bubble and a part list in the same turn.
func (n *Normalizer) Classify(reply *RawReply) ([]ViewNode, []string) {
	var nodes []ViewNode

	if reply.Reply != "" {
		text := redactStockLines(reply.Reply)
		if text != "" {
			nodes = append(nodes, TextNode{Role: RoleBot, Text: text})
		}
	}

	switch {
	case reply.Type == ReplyTypeParts && reply.HasData():
		if node, ok := n.classifyParts(reply); ok {
			nodes = append(nodes, node)
		}
	case reply.Type == ReplyTypeOrder && reply.HasData():
		var raw map[string]any
		if err := json.Unmarshal(reply.Data, &raw); err == nil {
			nodes = append(nodes, OrderNode{Order: n.normalizeOrder(raw)})
		} else {
			LogDebug("order payload is not an object: %v", err)
		}
	case reply.Type == ReplyTypeCommand && reply.HasData():
		nodes = append(nodes, CommandNode{Body: flattenCommand(reply.Data)})
	}

	if reply.Reply == "" && !reply.HasData() {
		nodes = append(nodes, EmptyNode{Message: emptyReplyFallback})
	}

	var suggestions []string
	for _, label := range reply.Suggestions {
		if label != "" {
			suggestions = append(suggestions, label)
		}
	}

	return nodes, suggestions
}

// classifyParts builds a PartListNode from a parts reply. The found
// count prefers metadata.total_found when it is numeric, otherwise the
// normalized result length.
func (n *Normalizer) classifyParts(reply *RawReply) (PartListNode, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(reply.Data, &items); err != nil {
		LogDebug("parts payload is not a list: %v", err)
		return PartListNode{}, false
	}

	parts := make([]NormalizedPart, 0, len(items))
	for _, item := range items {
		raw := map[string]any{}
		// Non-object entries normalize like empty ones
		_ = json.Unmarshal(item, &raw)
		parts = append(parts, n.NormalizePart(raw))
	}

	found := len(parts)
	if reply.Metadata != nil {
		if total, ok := toNumber(reply.Metadata["total_found"]); ok {
			found = int(total)
		}
	}

	return PartListNode{Parts: parts, FoundCount: found}, true
}

// redactStockLines drops lines carrying the stock-metric annotation,
// preserving all other lines verbatim and in order
func redactStockLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	tailRedacted := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), stockMarker) {
			tailRedacted = true
			continue
		}
		tailRedacted = false
		kept = append(kept, line)
	}
	out := strings.Join(kept, "\n")
	if tailRedacted {
		// the redaction left a dangling newline at the end
		out = strings.TrimRight(out, "\n")
	}
	return out
}

// flattenCommand renders a command payload to text: strings pass
// through verbatim, anything else is pretty-printed
func flattenCommand(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(data)
	}
	return string(pretty)
}
