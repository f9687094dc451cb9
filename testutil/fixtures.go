package testutil

// Canned backend reply payloads for tests. These mirror the shapes the
// production backend actually emits, including the field-name aliases
// older deployments still use.

// PartsReply is a typical part-search reply with one result
const PartsReply = `{
	"type": "parts",
	"reply": "✅ Found part BP-1!",
	"data": [{"part_no": "BP-1", "description": "Brake pads front", "price": 1500}],
	"metadata": {"total_found": 1},
	"suggestions": ["Order now", "Search another part"]
}`

// AliasedPartsReply uses the legacy field aliases throughout
const AliasedPartsReply = `{
	"type": "parts",
	"data": [{
		"_id": "p42",
		"partNumber": "FLT-889",
		"make": "Bosch",
		"vehicle_model": "Corolla",
		"desc": "Oil filter",
		"quantity": "7",
		"price": "950.5"
	}]
}`

// OrderReply is a typical order-tracking reply
const OrderReply = `{
	"type": "order",
	"reply": "Here is your order status.",
	"data": {
		"status": "En Transit",
		"tracking_id": "YAL-123456789",
		"last_update": "2024-06-01T10:00:00Z",
		"history": [
			{"date": "2024-05-30", "event": "Picked up"},
			{"date": "2024-05-31", "event": "Arrived at hub"},
			{"date": "2024-06-01", "event": "Out for delivery"}
		]
	}
}`

// CommandReply carries a structured command payload
const CommandReply = `{
	"type": "command",
	"data": {"action": "daily_report", "total_parts": 120}
}`

// TextReply is a plain conversational reply with a redactable stock line
const TextReply = `{
	"type": "text",
	"reply": "✅ Found part X1!\n📊 Stock: 12 units\nWould you like to order?",
	"suggestions": ["Order now"]
}`

// EmptyReply carries neither text nor data
const EmptyReply = `{}`
