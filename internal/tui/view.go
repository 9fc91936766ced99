package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.layout.TooSmall {
		return fmt.Sprintf("Terminal too small (%d×%d). Minimum is %d×%d.", m.width, m.height, MinWidth, MinHeight)
	}

	st := m.layout.Stage
	stage := Compose(m.stage.View(), st.Width, st.Height, m.doc)

	logW, logH := innerDims(m.layout.Log)
	logBox := m.theme.PanelBorderStyle(m.focus == FocusLog).
		Width(logW).
		Height(logH).
		Render(m.events.View())

	footer := footerStyle.Width(m.width).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), stage, logBox, footer)
}

func (m Model) renderHeader() string {
	offset := fmt.Sprintf("fixed(%g,%g)", m.offset.Top, m.offset.Left)
	if m.clamp {
		offset = "clamp"
	}
	parts := []string{
		"floater",
		"strategy=" + m.ctrl.Strategy(),
		"dir=" + string(m.direction),
		"offset=" + offset,
		"phase=" + m.ctrl.Phase().String(),
	}
	if pos := m.ctrl.State().FloatingPosition; pos != nil {
		parts = append(parts, fmt.Sprintf("at=%g,%gpx", pos.Left, pos.Top))
	}
	line := ansi.Truncate(" "+strings.Join(parts, "  "), m.width, "…")
	return m.theme.AccentHeaderStyle().Width(m.width).Render(line)
}

// renderCanvas renders the full scrollable stage document: a ruler every
// fourth row and the trigger bar half a screen down.
func (m Model) renderCanvas() string {
	stageH := m.layout.Stage.Height
	bar := triggerRow(stageH)
	rows := make([]string, stageCanvasRows(stageH))
	for i := range rows {
		switch {
		case i == bar:
			rows[i] = strings.Repeat(" ", m.barX()) + m.triggers.View(m.open)
		case i%4 == 0:
			rows[i] = rulerStyle.Render(fmt.Sprintf("%3d ┄", i))
		}
	}
	return strings.Join(rows, "\n")
}
