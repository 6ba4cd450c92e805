package ui

import (
	"strings"

	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/menu"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openPrompt switches to the input screen bound to the target's origin. The
// buffer always starts empty.
func (m *Model) openPrompt(target menu.Target) tea.Cmd {
	m.screen = menu.Screen{Kind: menu.ScreenInput, Prompt: target.Prompt, Origin: target.Origin}
	m.cursor = 0
	m.input.Reset()
	m.input.Focus()
	events.Input.Prompt(target.Origin.String())
	return textinput.Blink
}

func (m *Model) handleInputKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		origin := m.screen.Origin
		events.Input.Cancel(origin.String(), events.InputReasonEscape)
		m.input.Reset()
		m.setScreen(origin.Parent())
		return nil
	case tea.KeyEnter:
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return cmd
}

// submitInput dispatches the action bound to the prompt origin with the
// trimmed buffer. Blank input never spawns a subprocess.
func (m *Model) submitInput() tea.Cmd {
	origin := m.screen.Origin
	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if value == "" {
		events.Input.Cancel(origin.String(), events.InputReasonEmpty)
		m.showOutput("Empty input")
		return nil
	}
	events.Input.Submit(origin.String(), value)
	return m.dispatchOrigin(origin, value)
}
