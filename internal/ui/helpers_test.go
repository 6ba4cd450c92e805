package ui

import (
	"os/exec"
	"testing"

	"vtpod.dev/vtpod/internal/podman"
	"vtpod.dev/vtpod/internal/run"
	"vtpod.dev/vtpod/internal/testutil"
	"vtpod.dev/vtpod/internal/vt"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, rec *testutil.ExecRecorder, params Params) *Model {
	t.Helper()
	if rec != nil {
		runner := run.NewWithExec(rec.Exec)
		if params.Podman == nil {
			params.Podman = podman.NewClient(runner, "")
		}
		if params.VT == nil {
			params.VT = vt.NewSwitcher(runner)
		}
	}
	return NewModel(params)
}

func newTestHarness(t *testing.T, rec *testutil.ExecRecorder, params Params) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, rec, params))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

// stubExecProcess substitutes the terminal handoff: it records each command
// and completes the attempt with the next scripted error.
type stubExecProcess struct {
	commands [][]string
	errs     []error
	calls    int
}

func (s *stubExecProcess) exec(cmd *exec.Cmd, fn tea.ExecCallback) tea.Cmd {
	s.commands = append(s.commands, cmd.Args)
	var err error
	if s.calls < len(s.errs) {
		err = s.errs[s.calls]
	}
	s.calls++
	return func() tea.Msg {
		return fn(err)
	}
}

// updateReturnsQuit reports whether dispatching the message yields tea.Quit.
func updateReturnsQuit(t *testing.T, m *Model, msg tea.Msg) bool {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
