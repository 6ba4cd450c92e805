// Package vt switches kernel virtual terminals via chvt.
package vt

import (
	"strings"

	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/run"
)

// Switcher changes the active virtual terminal. chvt needs root, so the
// invocation goes through sudo.
type Switcher struct {
	runner *run.Runner
}

// NewSwitcher returns a Switcher using the given runner.
func NewSwitcher(runner *run.Runner) *Switcher {
	return &Switcher{runner: runner}
}

// Switch changes to the named VT and returns the command output for display.
// Blank input short-circuits without spawning a process.
func (s *Switcher) Switch(target string) string {
	if strings.TrimSpace(target) == "" {
		events.VT.EmptyTarget()
		return "empty VT"
	}
	events.VT.Switch(target)
	return s.runner.Capture("sudo", "chvt", target)
}
