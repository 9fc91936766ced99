package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
)

// Theme holds accent-color-derived styles. Styles that ignore the accent
// live in styles.go.
type Theme struct {
	accentStyle     lipgloss.Style // header background
	menuStyle       lipgloss.Style // floating menu box
	borderFocused   lipgloss.Style
	borderUnfocused lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		menuStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// PanelBorderStyle returns the border style for a panel based on whether it
// currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderMenu renders menu items as the bordered block that is floated.
func (t Theme) RenderMenu(items []string) string {
	return t.menuStyle.Render(strings.Join(items, "\n"))
}

// RenderEvent renders a controller event as a single log line.
func (t Theme) RenderEvent(e floating.Event) string {
	ts := timestampStyle.Render(fmt.Sprintf("[%s]", e.At.Format("15:04:05")))
	style := eventStyle(e)
	msg := fmt.Sprintf("%s %-8s %s", eventIcon(e.Kind), e.Kind, e.Strategy)

	switch e.Kind {
	case floating.EventMount, floating.EventUpdate:
		msg += "  dir=" + string(e.Direction)
	case floating.EventSkip:
		msg += "  " + e.Reason
		if e.Size != nil {
			msg += fmt.Sprintf("  size=%gx%g", e.Size.Width, e.Size.Height)
		}
	case floating.EventPosition:
		if e.Position != nil {
			msg += fmt.Sprintf("  dir=%s  left=%gpx top=%gpx", e.Direction, e.Position.Left, e.Position.Top)
		}
		if e.Size != nil {
			msg += fmt.Sprintf("  size=%gx%g", e.Size.Width, e.Size.Height)
		}
	}
	return fmt.Sprintf("%s  %s", ts, style.Render(msg))
}
