package tui

import (
	"algofit-storefront/internal/app/alert"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette of the terminal storefront.
type Theme struct {
	Text    lipgloss.Color
	Dim     lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

var DefaultTheme = Theme{
	Text:    lipgloss.Color("#c0caf5"),
	Dim:     lipgloss.Color("#565f89"),
	Border:  lipgloss.Color("#414868"),
	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Info:    lipgloss.Color("#7dcfff"),
}

// Styles are the pre-built lipgloss styles used by the renderer.
type Styles struct {
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Badge    lipgloss.Style
	Price    lipgloss.Style
	Name     lipgloss.Style
	SoldOut  lipgloss.Style
	Current  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Panel    lipgloss.Style
	Progress lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Badge:    lipgloss.NewStyle().Foreground(t.Text).Background(t.Border).Padding(0, 1),
		Price:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Name:     lipgloss.NewStyle().Foreground(t.Text),
		SoldOut:  lipgloss.NewStyle().Foreground(t.Error),
		Current:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Underline(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Info:     lipgloss.NewStyle().Foreground(t.Info),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		Progress: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

var DefaultStyles = NewStyles(DefaultTheme)

// noticeStyle picks the style matching an alert variant.
func (s Styles) noticeStyle(variant alert.Variant) lipgloss.Style {
	switch variant {
	case alert.Warning:
		return s.Warning
	case alert.Info:
		return s.Info
	case alert.Success:
		return s.Success
	}
	return s.Error
}
