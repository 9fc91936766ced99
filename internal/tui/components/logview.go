package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultMaxLines bounds how many lines a LogView keeps.
const DefaultMaxLines = 500

// LogView is a bounded, scrollable list of pre-rendered lines backed by
// bubbles/viewport. In follow mode (the default) new lines keep the view
// pinned to the bottom; scrolling away with keys or mouse leaves follow mode
// and scrolling back to the bottom re-enters it.
type LogView struct {
	vp       viewport.Model
	lines    []string
	maxLines int
	follow   bool
}

// NewLogView creates a LogView with the given dimensions.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:       viewport.New(w, h),
		maxLines: DefaultMaxLines,
		follow:   true,
	}
}

// SetMaxLines changes the retention bound. n <= 0 means unbounded.
func (v LogView) SetMaxLines(n int) LogView {
	v.maxLines = n
	return v.trim().sync()
}

// AppendLine appends a pre-rendered line, dropping the oldest lines past the
// retention bound.
func (v LogView) AppendLine(rendered string) LogView {
	v.lines = append(v.lines, rendered)
	return v.trim().sync()
}

// Len returns the number of retained lines.
func (v LogView) Len() int {
	return len(v.lines)
}

// Lines returns a copy of the retained lines.
func (v LogView) Lines() []string {
	out := make([]string, len(v.lines))
	copy(out, v.lines)
	return out
}

// SetSize resizes the view.
func (v LogView) SetSize(w, h int) LogView {
	v.vp.Width = w
	v.vp.Height = h
	return v.sync()
}

// Following reports whether follow mode is active.
func (v LogView) Following() bool {
	return v.follow
}

// Update handles scroll keys and mouse events.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		v.follow = v.vp.AtBottom()
	}
	return v, cmd
}

// View renders the visible lines.
func (v LogView) View() string {
	return v.vp.View()
}

func (v LogView) trim() LogView {
	if v.maxLines > 0 && len(v.lines) > v.maxLines {
		drop := len(v.lines) - v.maxLines
		v.lines = append([]string(nil), v.lines[drop:]...)
	}
	return v
}

func (v LogView) sync() LogView {
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}
