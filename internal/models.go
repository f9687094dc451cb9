package internal

import (
	"encoding/json"
	"strconv"
	"time"
)

// SessionKey is the storage key under which the session identifier persists
const SessionKey = "imobot_session_id"

// OutboundTurn is one user message bound for the backend
type OutboundTurn struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// RawReply is the backend's reply as received. The backend is loosely
// typed, so payloads are kept raw and resolved by the Normalizer.
type RawReply struct {
	Reply       string          `json:"reply,omitempty"`
	Type        string          `json:"type,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// HasData reports whether the reply carries a non-null data payload
func (r *RawReply) HasData() bool {
	return len(r.Data) > 0 && string(r.Data) != "null"
}

// NormalizedPart is the canonical part record, independent of which
// field aliases the backend used
type NormalizedPart struct {
	ID          string   `json:"id,omitempty"`
	PartNo      string   `json:"part_no"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Description string   `json:"description"`
	Qty         int      `json:"qty"`
	UnitPrice   *float64 `json:"unit_price"`
}

// OrderEvent is one entry in an order's tracking history
type OrderEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// OrderView is the canonical order-tracking record
type OrderView struct {
	Status     string       `json:"status"`
	LastUpdate string       `json:"last_update,omitempty"`
	Courier    string       `json:"courier"`
	TrackingID string       `json:"tracking_id"`
	History    []OrderEvent `json:"history,omitempty"`
}

// Counters tracks running conversation totals for the process lifetime
type Counters struct {
	Turns      int
	PartsFound int
	StartedAt  time.Time
}

// pickString resolves the first present value among the given keys to a
// display string. Non-string scalars are stringified.
func pickString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		return stringify(v)
	}
	return ""
}

// stringify converts a scalar JSON value to its display string
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// coerceInt resolves the first present value among keys to an integer
// quantity. A present value that does not parse as a number yields the
// fallback, it does not fall through to later aliases.
func coerceInt(raw map[string]any, fallback int, keys ...string) int {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if n, ok := toNumber(v); ok {
			return int(n)
		}
		return fallback
	}
	return fallback
}

// coerceNumber resolves the first present value among keys to a number,
// or nil when absent or unparseable
func coerceNumber(raw map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if n, ok := toNumber(v); ok {
			return &n
		}
		return nil
	}
	return nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
