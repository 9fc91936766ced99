package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
)

func TestEventIcon(t *testing.T) {
	tests := []struct {
		kind floating.EventKind
		want string
	}{
		{floating.EventMount, "▲"},
		{floating.EventUpdate, "↻"},
		{floating.EventSkip, "…"},
		{floating.EventPosition, "◆"},
		{floating.EventUnmount, "▼"},
		// default case
		{"other", "•"},
		{"", "•"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := eventIcon(tt.kind); got != tt.want {
				t.Errorf("eventIcon(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEventStyle(t *testing.T) {
	tests := []struct {
		name  string
		event floating.Event
		want  lipgloss.TerminalColor
	}{
		{"mount", floating.Event{Kind: floating.EventMount}, colorBlue},
		{"update", floating.Event{Kind: floating.EventUpdate}, colorWhite},
		{"position", floating.Event{Kind: floating.EventPosition}, colorGreen},
		{"zero size skip", floating.Event{Kind: floating.EventSkip, Reason: floating.ReasonZeroSize}, colorYellow},
		{"offset pending skip", floating.Event{Kind: floating.EventSkip, Reason: floating.ReasonOffsetPending}, colorYellow},
		{"no target skip", floating.Event{Kind: floating.EventSkip, Reason: floating.ReasonNoTarget}, colorRed},
		{"bad direction skip", floating.Event{Kind: floating.EventSkip, Reason: floating.ReasonBadDirection}, colorRed},
		{"unmount", floating.Event{Kind: floating.EventUnmount}, colorOrange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventStyle(tt.event).GetForeground(); got != tt.want {
				t.Errorf("eventStyle foreground = %v, want %v", got, tt.want)
			}
		})
	}
}
