package formatter

import (
	"fmt"
	"strings"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the lipgloss style used for a production phase.
// Irrigation phases are blue, light transitions yellow, cutting red,
// deliveries purple.
func PhaseStyle(p domain.Phase) lipgloss.Style {
	switch p {
	case domain.PhaseSoak, domain.PhaseSpray, domain.PhaseWater:
		return StyleBlue
	case domain.PhaseSow:
		return StyleGreen
	case domain.PhaseLightsOn:
		return StyleYellow
	case domain.PhaseHarvest:
		return StyleRed
	case domain.PhaseDeliver:
		return StylePurple
	default:
		return StyleFg
	}
}

// OrderStatusPill returns a colored status indicator for an order.
func OrderStatusPill(status domain.OrderStatus) string {
	switch status {
	case domain.OrderDraft:
		return StyleDim.Render("○ Draft")
	case domain.OrderConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.OrderPacked:
		return StyleYellow.Render("◆ Packed")
	case domain.OrderDelivered:
		return StyleDim.Render("✔ Delivered")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusPill returns a colored status indicator for a task.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// SourceBadge marks machine-generated rows so they read differently from
// hand-written tasks in listings.
func SourceBadge(source domain.TaskSource) string {
	if source == domain.SourceGenerated {
		return StylePurple.Render("sync")
	}
	return StyleDim.Render("user")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the dim style.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
