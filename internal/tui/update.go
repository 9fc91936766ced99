package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m.refresh(), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.focus == FocusLog {
			var cmd tea.Cmd
			m.events, cmd = m.events.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.open {
			m.ctrl.Unmount()
			m.open = false
			m = m.record()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.Next()
		return m, nil
	}

	if m.layout.TooSmall {
		return m, nil
	}
	if m.focus == FocusLog {
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle(), nil
	case key.Matches(msg, m.keys.Prev):
		m.triggers = m.triggers.Prev()
		return m.redrawStage().refresh(), nil
	case key.Matches(msg, m.keys.Next):
		m.triggers = m.triggers.Next()
		return m.redrawStage().refresh(), nil
	case key.Matches(msg, m.keys.Direction):
		m.direction = m.direction.Next()
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Offset):
		m.clamp = !m.clamp
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Up):
		return m.scrollBy(-1), nil
	case key.Matches(msg, m.keys.Down):
		return m.scrollBy(1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.stage.Height / 2), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.stage.Height / 2), nil
	}
	return m, nil
}

// toggle mounts or unmounts the active trigger's menu.
func (m Model) toggle() Model {
	if m.open {
		m.ctrl.Unmount()
		m.open = false
	} else {
		m.ctrl.Update(m.props())
		m.ctrl.Mount()
		m.open = true
	}
	return m.redrawStage().record()
}

// scrollBy moves the stage by n rows and repositions an open menu.
func (m Model) scrollBy(n int) Model {
	m.stage.SetYOffset(m.stage.YOffset + n)
	return m.syncScroll().refresh()
}

// redrawStage re-renders the stage document so trigger styling follows the
// active trigger and open state.
func (m Model) redrawStage() Model {
	if !m.layout.TooSmall {
		m.stage.SetContent(m.renderCanvas())
	}
	return m
}
