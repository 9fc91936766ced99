package components

import (
	"strings"
	"testing"
)

func TestNewTriggerBar_FirstActive(t *testing.T) {
	b := NewTriggerBar([]string{"File", "Edit"})
	if b.Active() != 0 {
		t.Errorf("Active: got %d, want 0", b.Active())
	}
	if b.Len() != 2 {
		t.Errorf("Len: got %d, want 2", b.Len())
	}
}

func TestTriggerBar_NextPrevWrap(t *testing.T) {
	b := NewTriggerBar([]string{"A", "B", "C"})
	tests := []struct {
		step func(TriggerBar) TriggerBar
		want int
	}{
		{TriggerBar.Next, 1},
		{TriggerBar.Next, 2},
		{TriggerBar.Next, 0},
		{TriggerBar.Prev, 2},
		{TriggerBar.Prev, 1},
	}
	for i, tt := range tests {
		b = tt.step(b)
		if b.Active() != tt.want {
			t.Errorf("step %d: Active = %d, want %d", i, b.Active(), tt.want)
		}
	}
}

func TestTriggerBar_Select(t *testing.T) {
	b := NewTriggerBar([]string{"A", "B", "C"})
	tests := []struct{ i, want int }{
		{2, 2},
		{0, 0},
		{7, 2},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := b.Select(tt.i).Active(); got != tt.want {
			t.Errorf("Select(%d).Active() = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestTriggerBar_Bounds(t *testing.T) {
	b := NewTriggerBar([]string{"File", "Edit", "Help me"})
	tests := []struct {
		i        int
		x, width int
	}{
		{0, 0, 6},
		{1, 9, 6},
		{2, 18, 9},
		{3, 0, 0},
		{-1, 0, 0},
	}
	for _, tt := range tests {
		x, w := b.Bounds(tt.i)
		if x != tt.x || w != tt.width {
			t.Errorf("Bounds(%d) = (%d, %d), want (%d, %d)", tt.i, x, w, tt.x, tt.width)
		}
	}
	if b.Width() != 27 {
		t.Errorf("Width = %d, want 27", b.Width())
	}
}

func TestTriggerBar_ViewMatchesBounds(t *testing.T) {
	b := NewTriggerBar([]string{"File", "Edit", "View"}).Next()
	for _, open := range []bool{false, true} {
		view := b.View(open)
		if strings.Contains(view, "\n") {
			t.Fatalf("View(%v) spans rows: %q", open, view)
		}
		for _, label := range []string{"File", "Edit", "View"} {
			if !strings.Contains(view, label) {
				t.Errorf("View(%v) missing %q", open, label)
			}
		}
	}
	plain := b.View(false)
	if idx := strings.Index(plain, "Edit"); idx >= 0 {
		x, _ := b.Bounds(1)
		// label sits one padding cell inside its bounds; holds when no ANSI is emitted
		if !strings.Contains(plain, "\x1b") && idx != x+1 {
			t.Errorf("Edit label at column %d, want %d", idx, x+1)
		}
	}
}

func TestTriggerBar_Empty(t *testing.T) {
	b := NewTriggerBar(nil)
	if b.View(false) != "" {
		t.Errorf("empty View = %q, want empty string", b.View(false))
	}
	if b.Width() != 0 {
		t.Errorf("empty Width = %d", b.Width())
	}
	_ = b.Next()
	_ = b.Prev()
}
