package ui

import (
	"fmt"
	"os/exec"
	"reflect"
	"strings"

	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/menu"
	"vtpod.dev/vtpod/internal/podman"
	"vtpod.dev/vtpod/internal/theme"
	"vtpod.dev/vtpod/internal/vt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// ExecProcessFunc hands an interactive child the terminal and reports its
// exit. Production code uses tea.ExecProcess; tests substitute it.
type ExecProcessFunc func(cmd *exec.Cmd, fn tea.ExecCallback) tea.Cmd

// Params configures a new Model.
type Params struct {
	Podman      *podman.Client
	VT          *vt.Switcher
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	RootScreen  string
	ExecProcess ExecProcessFunc
}

// Model implements the Bubble Tea model for the vtpod menu.
type Model struct {
	definition *menu.Definition
	screen     menu.Screen
	cursor     int
	input      textinput.Model
	output     string

	loading      bool
	pendingID    string
	pendingLabel string
	lastCommand  string
	errMsg       string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	podman      *podman.Client
	vt          *vt.Switcher
	execProcess ExecProcessFunc

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state on the main menu.
func NewModel(p Params) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = *styles.InputPrompt
	ti.CharLimit = 128
	m := &Model{
		definition:  menu.Default(),
		screen:      menu.Screen{Kind: menu.ScreenMain},
		input:       ti,
		showFooter:  p.ShowFooter,
		verbose:     p.Verbose,
		podman:      p.Podman,
		vt:          p.VT,
		execProcess: p.ExecProcess,
	}
	if m.execProcess == nil {
		m.execProcess = tea.ExecProcess
	}
	if p.Width > 0 {
		m.width = p.Width
		m.fixedWidth = true
	}
	if p.Height > 0 {
		m.height = p.Height
		m.fixedHeight = true
	}
	m.applyRootOverride(p.RootScreen)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. Messages without a registered
// handler are consumed without any state change.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.screen.Kind == menu.ScreenInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(shellExitMsg{}):      m.handleShellExitMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) applyRootOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		return
	}
	kind, ok := menu.KindFromName(trimmed)
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown root screen %q", trimmed)
		return
	}
	m.screen = menu.Screen{Kind: kind}
	events.UI.ScreenEnter(kind.String())
}

// setScreen replaces the current screen and resets the cursor, keeping the
// selected-index invariant for the new screen's item list.
func (m *Model) setScreen(kind menu.ScreenKind) {
	m.screen = menu.Screen{Kind: kind}
	m.cursor = 0
	events.UI.ScreenEnter(kind.String())
}

// showOutput displays a message on the output screen.
func (m *Model) showOutput(message string) {
	m.setScreen(menu.ScreenOutput)
	m.output = message
}
