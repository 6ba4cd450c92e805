package ui

import (
	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		events.UI.Quit(m.screen.Kind.String())
		return tea.Quit
	}
	// No cancellation once a command is in flight.
	if m.loading {
		return nil
	}
	if m.screen.Kind == menu.ScreenInput {
		return m.handleInputKey(key)
	}
	switch key.String() {
	case "q":
		switch m.screen.Kind {
		case menu.ScreenMain:
			events.UI.Quit(m.screen.Kind.String())
			return tea.Quit
		case menu.ScreenOutput:
			m.leaveOutput()
		}
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	switch m.screen.Kind {
	case menu.ScreenMain:
		events.UI.Quit(m.screen.Kind.String())
		return tea.Quit
	case menu.ScreenOutput:
		m.leaveOutput()
	default:
		m.setScreen(m.screen.Kind.Parent())
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.screen.Kind == menu.ScreenOutput {
		m.leaveOutput()
		return nil
	}
	if !m.screen.Kind.IsList() {
		return nil
	}
	entry, ok := m.definition.Entry(m.screen.Kind, m.cursor)
	if !ok {
		return nil
	}
	events.UI.MenuEnter(m.screen.Kind.String(), entry.ID, entry.Label)
	switch entry.Target.Kind {
	case menu.TargetGoto:
		m.setScreen(entry.Target.Screen)
	case menu.TargetQuit:
		events.UI.Quit(m.screen.Kind.String())
		return tea.Quit
	case menu.TargetPrompt:
		return m.openPrompt(entry.Target)
	case menu.TargetCommand:
		return m.dispatchEntry(entry)
	}
	return nil
}

// leaveOutput returns to the podman menu. The destination is fixed no matter
// which screen's action produced the output.
func (m *Model) leaveOutput() {
	m.output = ""
	m.setScreen(menu.ScreenPodman)
}

func (m *Model) moveCursorUp() {
	if n := m.definition.Len(m.screen.Kind); n > 0 {
		m.cursor = (m.cursor + n - 1) % n
		events.UI.MenuCursor(m.screen.Kind.String(), m.cursor)
	}
}

func (m *Model) moveCursorDown() {
	if n := m.definition.Len(m.screen.Kind); n > 0 {
		m.cursor = (m.cursor + 1) % n
		events.UI.MenuCursor(m.screen.Kind.String(), m.cursor)
	}
}
