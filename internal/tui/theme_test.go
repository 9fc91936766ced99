package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

func TestNewTheme_DefaultAccent(t *testing.T) {
	th := NewTheme("")
	if got := th.AccentHeaderStyle().GetBackground(); got != lipgloss.Color(defaultAccentColor) {
		t.Errorf("header background = %v, want %s", got, defaultAccentColor)
	}
	custom := NewTheme("#112233")
	if got := custom.PanelBorderStyle(true).GetBorderTopForeground(); got != lipgloss.Color("#112233") {
		t.Errorf("focused border = %v, want #112233", got)
	}
	if got := custom.PanelBorderStyle(false).GetBorderTopForeground(); got != colorGray {
		t.Errorf("unfocused border = %v, want gray", got)
	}
}

func TestTheme_RenderMenu(t *testing.T) {
	out := NewTheme("").RenderMenu([]string{"New", "Open…"})
	// rounded border + one cell of padding on each side
	if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 9 || h != 4 {
		t.Errorf("menu size = %d×%d, want 9×4:\n%s", w, h, out)
	}
	for _, item := range []string{"New", "Open…"} {
		if !strings.Contains(out, item) {
			t.Errorf("menu missing %q", item)
		}
	}
}

func TestTheme_RenderEvent(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	pos := geometry.Point{Top: 128, Left: 80}
	size := geometry.Size{Width: 40, Height: 32}

	tests := []struct {
		name  string
		event floating.Event
		want  []string
	}{
		{
			name:  "mount",
			event: floating.Event{Kind: floating.EventMount, Strategy: "portal", Direction: geometry.DirectionTop, At: at},
			want:  []string{"[15:04:05]", "mount", "portal", "dir=top"},
		},
		{
			name:  "position",
			event: floating.Event{Kind: floating.EventPosition, Strategy: "fallback", Direction: geometry.DirectionBottom, Position: &pos, Size: &size, At: at},
			want:  []string{"position", "left=80px top=128px", "size=40x32"},
		},
		{
			name:  "skip",
			event: floating.Event{Kind: floating.EventSkip, Strategy: "portal", Reason: floating.ReasonZeroSize, Size: &geometry.Size{}, At: at},
			want:  []string{"skip", floating.ReasonZeroSize, "size=0x0"},
		},
		{
			name:  "unmount",
			event: floating.Event{Kind: floating.EventUnmount, Strategy: "portal", At: at},
			want:  []string{"unmount"},
		},
	}
	th := NewTheme("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := th.RenderEvent(tt.event)
			if strings.Contains(line, "\n") {
				t.Errorf("event line spans rows: %q", line)
			}
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("RenderEvent = %q, missing %q", line, w)
				}
			}
		})
	}
}

func TestEventStyle_WarnsOnUnpositionableSkips(t *testing.T) {
	for _, reason := range []string{floating.ReasonBadDirection, floating.ReasonNoTarget} {
		e := floating.Event{Kind: floating.EventSkip, Reason: reason}
		if !eventStyle(e).GetBold() {
			t.Errorf("skip %q should use the warning style", reason)
		}
	}
	if eventStyle(floating.Event{Kind: floating.EventSkip, Reason: floating.ReasonZeroSize}).GetBold() {
		t.Error("zero-size skip is routine and should not warn")
	}
}
