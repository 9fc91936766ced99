// Package components provides reusable TUI components for the floater demo.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// triggerGap is the number of blank cells between adjacent triggers.
const triggerGap = 3

var (
	triggerIdleStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("#888888"))

	triggerActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#7D56F4"))

	triggerOpenStyle = triggerActiveStyle.
				Underline(true)
)

// TriggerBar is a row of one-line buttons that each own a floating menu. It
// knows the cell span of every button so callers can hand the selected one to
// the positioning controller as the reference rectangle.
type TriggerBar struct {
	labels []string
	active int
}

// NewTriggerBar creates a TriggerBar with the given labels. The first trigger
// is active.
func NewTriggerBar(labels []string) TriggerBar {
	return TriggerBar{labels: labels}
}

// Active returns the index of the currently active trigger.
func (b TriggerBar) Active() int {
	return b.active
}

// Len returns the number of triggers.
func (b TriggerBar) Len() int {
	return len(b.labels)
}

// Next returns a TriggerBar with the next trigger active (wraps around).
func (b TriggerBar) Next() TriggerBar {
	if len(b.labels) == 0 {
		return b
	}
	b.active = (b.active + 1) % len(b.labels)
	return b
}

// Prev returns a TriggerBar with the previous trigger active (wraps around).
func (b TriggerBar) Prev() TriggerBar {
	if len(b.labels) == 0 {
		return b
	}
	b.active = (b.active + len(b.labels) - 1) % len(b.labels)
	return b
}

// Select returns a TriggerBar with trigger i active. Out-of-range indexes
// are clamped.
func (b TriggerBar) Select(i int) TriggerBar {
	switch {
	case len(b.labels) == 0:
		return b
	case i < 0:
		i = 0
	case i >= len(b.labels):
		i = len(b.labels) - 1
	}
	b.active = i
	return b
}

// Width returns the rendered width of the whole bar in cells.
func (b TriggerBar) Width() int {
	if len(b.labels) == 0 {
		return 0
	}
	x, w := b.Bounds(len(b.labels) - 1)
	return x + w
}

// Bounds returns the starting column and width of trigger i, relative to the
// bar's first cell. Out-of-range indexes return zeros.
func (b TriggerBar) Bounds(i int) (x, width int) {
	if i < 0 || i >= len(b.labels) {
		return 0, 0
	}
	for j := 0; j < i; j++ {
		x += buttonWidth(b.labels[j]) + triggerGap
	}
	return x, buttonWidth(b.labels[i])
}

// View renders the bar as a single line. open marks the active trigger as
// having its menu shown.
func (b TriggerBar) View(open bool) string {
	if len(b.labels) == 0 {
		return ""
	}

	parts := make([]string, len(b.labels))
	for i, label := range b.labels {
		switch {
		case i == b.active && open:
			parts[i] = triggerOpenStyle.Render(label)
		case i == b.active:
			parts[i] = triggerActiveStyle.Render(label)
		default:
			parts[i] = triggerIdleStyle.Render(label)
		}
	}
	return strings.Join(parts, strings.Repeat(" ", triggerGap))
}

func buttonWidth(label string) int {
	return lipgloss.Width(label) + 2
}
