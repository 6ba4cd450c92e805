package ui

import (
	"fmt"
	"strings"

	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// actionResultMsg carries the display output of a captured command.
type actionResultMsg struct {
	id     string
	output string
}

// shellExitMsg reports the exit of one interactive shell attempt.
type shellExitMsg struct {
	target  string
	shell   string
	attempt int
	err     error
}

// dispatchEntry runs the captured command bound directly to a menu entry.
func (m *Model) dispatchEntry(entry menu.Entry) tea.Cmd {
	switch entry.Target.Command {
	case menu.CommandVTSwitch:
		arg := entry.Target.Arg
		return m.runCaptured(string(menu.CommandVTSwitch), entry.Label, "sudo chvt "+arg, func() string {
			return m.vt.Switch(arg)
		})
	case menu.CommandPodmanList:
		return m.runCaptured(string(menu.CommandPodmanList), entry.Label, "podman ps -a", func() string {
			return m.podman.List()
		})
	}
	return nil
}

// dispatchOrigin runs the action bound to a submitted input prompt.
func (m *Model) dispatchOrigin(origin menu.PromptOrigin, value string) tea.Cmd {
	switch origin {
	case menu.OriginChangeVT:
		return m.runCaptured(origin.String(), value, "sudo chvt "+value, func() string {
			return m.vt.Switch(value)
		})
	case menu.OriginPodmanStart:
		return m.runCaptured(origin.String(), value, "podman start "+value, func() string {
			return m.podman.Start(value)
		})
	case menu.OriginPodmanStop:
		return m.runCaptured(origin.String(), value, "podman stop "+value, func() string {
			return m.podman.Stop(value)
		})
	case menu.OriginPodmanShell:
		return m.openShell(value)
	}
	return nil
}

// runCaptured marks the command pending, moves to the output screen, and
// returns the command closure. The closure runs off the UI goroutine; its
// result arrives as an actionResultMsg.
func (m *Model) runCaptured(id, label, commandLine string, fn func() string) tea.Cmd {
	m.beginPending(id, label, commandLine)
	return func() tea.Msg {
		return actionResultMsg{id: id, output: fn()}
	}
}

func (m *Model) beginPending(id, label, commandLine string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.lastCommand = commandLine
	m.setScreen(menu.ScreenOutput)
	m.output = ""
	events.Command.Queue(id, label)
}

func (m *Model) finishPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.id != m.pendingID {
		events.Command.Stale(result.id, m.pendingID)
		return nil
	}
	m.finishPending()
	m.output = result.output
	events.Command.Result(result.id, len(result.output))
	return nil
}

// openShell starts the interactive shell handoff for the given container.
func (m *Model) openShell(target string) tea.Cmd {
	shells := m.podman.Shells()
	if len(shells) == 0 {
		m.showOutput(fmt.Sprintf("no shells configured for %s", target))
		return nil
	}
	m.beginPending(menu.OriginPodmanShell.String(), target, shellCommandLine(target, shells[0]))
	return m.execShell(target, 0)
}

// execShell hands the terminal to one shell attempt. tea.ExecProcess leaves
// raw mode before the child starts and restores it when the child exits,
// even when spawning fails.
func (m *Model) execShell(target string, attempt int) tea.Cmd {
	shell := m.podman.Shells()[attempt]
	m.lastCommand = shellCommandLine(target, shell)
	cmd := m.podman.ShellCommand(target, shell)
	return m.execProcess(cmd, func(err error) tea.Msg {
		return shellExitMsg{target: target, shell: shell, attempt: attempt, err: err}
	})
}

// handleShellExitMsg retries the next shell candidate on failure; only when
// every candidate has failed does the error reach the output screen.
func (m *Model) handleShellExitMsg(msg tea.Msg) tea.Cmd {
	exit, ok := msg.(shellExitMsg)
	if !ok {
		return nil
	}
	shells := m.podman.Shells()
	if exit.err != nil && exit.attempt+1 < len(shells) {
		next := shells[exit.attempt+1]
		events.Podman.ShellFallback(exit.target, exit.shell, next, exit.err)
		return m.execShell(exit.target, exit.attempt+1)
	}
	events.Podman.ShellExit(exit.target, exit.shell, exit.err)
	m.finishPending()
	m.setScreen(menu.ScreenOutput)
	if exit.err != nil {
		m.output = exit.err.Error()
	} else {
		m.output = fmt.Sprintf("Exited shell for %s", exit.target)
	}
	return nil
}

func shellCommandLine(target, shell string) string {
	return strings.Join([]string{"podman", "exec", "-it", target, shell}, " ")
}
