package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxPartCards caps how many part cards one reply renders; the
// remainder collapses into a count line
const maxPartCards = 8

// maxHistoryEvents caps how many tracking events an order card shows
const maxHistoryEvents = 4

// lowStockThreshold drives advisory styling only; availability is
// strictly qty > 0
const lowStockThreshold = 5

var (
	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	messageBodyStyle = lipgloss.NewStyle().
				Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cardDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inStockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	lowStockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	outOfStockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	moreResultsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Bold(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// statusIcons maps a lowercased order status to its icon
var statusIcons = map[string]string{
	"en transit": "🚚",
	"in transit": "🚚",
	"delivered":  "✅",
	"pending":    "🕐",
	"processing": "⚙️",
}

// statusColors maps a lowercased order status to its accent color
var statusColors = map[string]lipgloss.Color{
	"en transit": lipgloss.Color("214"),
	"in transit": lipgloss.Color("214"),
	"delivered":  lipgloss.Color("42"),
	"pending":    lipgloss.Color("245"),
	"processing": lipgloss.Color("39"),
}

const (
	neutralStatusIcon  = "ℹ️"
	neutralStatusColor = lipgloss.Color("245")
)

// suggestionInfo pairs a well-known chip label with the example prompt
// it feeds into the input
type suggestionInfo struct {
	Prompt string
	Icon   string
}

var suggestionPrompts = map[string]suggestionInfo{
	"Search Parts (Find by vehicle or part)": {
		Prompt: "Find brake pads for Toyota Corolla 2020",
		Icon:   "🔍",
	},
	"Serial Lookup (Enter part number)": {
		Prompt: "Part number 35001110XKV08B",
		Icon:   "🔢",
	},
	"Track Order (Yalidine)": {
		Prompt: "Track order 123456789",
		Icon:   "🚚",
	},
	"Daily Report (Inventory summary)": {
		Prompt: "daily report",
		Icon:   "📈",
	},
}

// SuggestionPrompt resolves a chip label to the prompt it should place
// in the input. Unknown labels fall back to the label text itself.
func SuggestionPrompt(label string) string {
	if info, ok := suggestionPrompts[label]; ok {
		return info.Prompt
	}
	return label
}

// PartFollowUp derives the follow-up prompt for a selected part card
func PartFollowUp(p NormalizedPart) string {
	name := p.PartNo
	if name == "" {
		name = p.Description
	}
	return fmt.Sprintf("Tell me more about part %s", name)
}

// Renderer translates view nodes into styled terminal output. It holds
// no conversation state; every call depends only on its node.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer wrapping output at the given width
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 72
	}
	return &Renderer{width: width}
}

// Render maps one view node to its terminal representation
func (r *Renderer) Render(node ViewNode) string {
	switch n := node.(type) {
	case TextNode:
		return r.renderText(n)
	case PartListNode:
		return r.renderParts(n)
	case OrderNode:
		return r.renderOrder(n.Order)
	case CommandNode:
		return commandStyle.Render(n.Body)
	case EmptyNode:
		return r.renderText(TextNode{Role: RoleBot, Text: n.Message})
	case SuggestionsNode:
		return r.renderSuggestions(n.Labels)
	default:
		return ""
	}
}

func (r *Renderer) renderText(n TextNode) string {
	label := botLabelStyle.Render("🤖 IMOBOT")
	if n.Role == RoleUser {
		label = userLabelStyle.Render("👤 You")
	}
	body := messageBodyStyle.Width(r.width).Render(formatInline(n.Text))
	return label + "\n" + body
}

func (r *Renderer) renderParts(n PartListNode) string {
	if len(n.Parts) == 0 {
		return r.renderText(TextNode{Role: RoleBot, Text: "No matching parts found in inventory."})
	}

	var blocks []string
	shown := n.Parts
	if len(shown) > maxPartCards {
		shown = shown[:maxPartCards]
	}
	for _, part := range shown {
		blocks = append(blocks, r.renderPartCard(part))
	}
	if len(n.Parts) > maxPartCards {
		blocks = append(blocks, moreResultsStyle.Render(
			fmt.Sprintf("➕ %d more results available", len(n.Parts)-maxPartCards)))
	}
	return strings.Join(blocks, "\n")
}

func (r *Renderer) renderPartCard(p NormalizedPart) string {
	title := p.Description
	if title == "" {
		title = p.PartNo
	}
	if title == "" {
		title = "Spare Part"
	}

	brand := p.Brand
	if brand == "" {
		brand = "Generic"
	}

	var lines []string
	lines = append(lines, cardTitleStyle.Render(title))
	lines = append(lines, cardDetailStyle.Render("⌗ "+p.PartNo))
	lines = append(lines, cardDetailStyle.Render("🏷 "+brand))
	lines = append(lines, priceStyle.Render("💰 "+FormatPrice(p.UnitPrice)))
	lines = append(lines, renderStock(p.Qty))

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// renderStock maps a quantity to the availability line. Low stock is a
// styling hint, not a separate availability state.
func renderStock(qty int) string {
	switch {
	case qty == 0:
		return outOfStockStyle.Render("📦 Out of stock")
	case qty < lowStockThreshold:
		return lowStockStyle.Render("📦 Available")
	default:
		return inStockStyle.Render("📦 Available")
	}
}

// FormatPrice renders a nullable unit price: two decimals in DZD, or
// the on-request placeholder
func FormatPrice(price *float64) string {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return "Price on request"
	}
	return fmt.Sprintf("%.2f DZD", *price)
}

func (r *Renderer) renderOrder(order OrderView) string {
	icon, color := statusLook(order.Status)
	statusStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	var lines []string
	lines = append(lines, statusStyle.Render(icon+" "+order.Status))
	if order.LastUpdate != "" {
		lines = append(lines, dimStyle.Render(order.LastUpdate))
	}
	lines = append(lines, cardDetailStyle.Render("🚚 "+order.Courier))
	lines = append(lines, cardDetailStyle.Render("# "+order.TrackingID))

	if len(order.History) > 0 {
		history := order.History
		if len(history) > maxHistoryEvents {
			history = history[len(history)-maxHistoryEvents:]
		}
		lines = append(lines, "")
		for _, event := range history {
			lines = append(lines, dimStyle.Render(event.Date)+"  "+event.Event)
		}
	}

	return cardStyle.BorderForeground(color).Render(strings.Join(lines, "\n"))
}

// statusLook resolves a status to its icon and color, case
// insensitively, with a neutral fallback for unknown statuses
func statusLook(status string) (string, lipgloss.Color) {
	s := strings.ToLower(strings.TrimSpace(status))
	icon, ok := statusIcons[s]
	if !ok {
		return neutralStatusIcon, neutralStatusColor
	}
	return icon, statusColors[s]
}

func (r *Renderer) renderSuggestions(labels []string) string {
	var chips []string
	for i, label := range labels {
		icon := "💡"
		if info, ok := suggestionPrompts[label]; ok {
			icon = info.Icon
		}
		chips = append(chips, chipStyle.Render(fmt.Sprintf("%d %s %s", i+1, icon, label)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, chips...)
}

// formatInline applies lightweight markup: **bold** spans are bolded,
// everything else passes through verbatim
func formatInline(text string) string {
	var out strings.Builder
	bold := lipgloss.NewStyle().Bold(true)
	rest := text
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			break
		}
		out.WriteString(rest[:start])
		out.WriteString(bold.Render(rest[start+2 : start+2+end]))
		rest = rest[start+2+end+2:]
	}
	out.WriteString(rest)
	return out.String()
}
