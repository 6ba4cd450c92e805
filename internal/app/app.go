package app

import (
	"errors"

	"vtpod.dev/vtpod/internal/podman"
	"vtpod.dev/vtpod/internal/run"
	"vtpod.dev/vtpod/internal/ui"
	"vtpod.dev/vtpod/internal/vt"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	PodmanBin  string
	RootScreen string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program. The program owns the
// terminal for its whole lifetime: raw mode and the alternate screen are
// entered on start and restored on every exit path, including errors.
func Run(cfg Config) error {
	runner := run.New()
	model := ui.NewModel(ui.Params{
		Podman:     podman.NewClient(runner, cfg.PodmanBin),
		VT:         vt.NewSwitcher(runner),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		RootScreen: cfg.RootScreen,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
