// Package tui provides a bubbletea + lipgloss playground for the floating
// menu controller: a scrollable stage with a row of triggers, the menu
// composited over it, and a live log of controller events.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorDim    = lipgloss.Color("#444444")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles that do not depend on the accent color.
var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	rulerStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	mountStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	skipStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	unmountStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// eventIcon returns the glyph shown before an event of the given kind.
func eventIcon(kind floating.EventKind) string {
	switch kind {
	case floating.EventMount:
		return "▲"
	case floating.EventUpdate:
		return "↻"
	case floating.EventSkip:
		return "…"
	case floating.EventPosition:
		return "◆"
	case floating.EventUnmount:
		return "▼"
	default:
		return "•"
	}
}

// eventStyle returns the lipgloss style for an event of the given kind.
func eventStyle(e floating.Event) lipgloss.Style {
	switch e.Kind {
	case floating.EventMount:
		return mountStyle
	case floating.EventPosition:
		return positionStyle
	case floating.EventSkip:
		if e.Reason == floating.ReasonBadDirection || e.Reason == floating.ReasonNoTarget {
			return warnStyle
		}
		return skipStyle
	case floating.EventUnmount:
		return unmountStyle
	default:
		return infoStyle
	}
}
