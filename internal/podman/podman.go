// Package podman wraps the podman invocations the menu exposes. Output is
// passed through for display untouched; interpreting it is out of scope.
package podman

import (
	"os/exec"

	"vtpod.dev/vtpod/internal/logging/events"
	"vtpod.dev/vtpod/internal/run"
)

// DefaultBin is the binary used when no override is configured.
const DefaultBin = "podman"

// psFormat keeps the listing to the columns the output screen can show.
const psFormat = "table {{.ID}}\t{{.Names}}\t{{.Status}}"

// shells is the ordered list tried when opening an interactive shell; each
// entry after the first is a fallback for the one before it.
var shells = []string{"/bin/sh", "/bin/bash"}

// Client issues podman commands through a shared runner.
type Client struct {
	runner *run.Runner
	bin    string
}

// NewClient returns a Client. An empty bin falls back to DefaultBin.
func NewClient(runner *run.Runner, bin string) *Client {
	if bin == "" {
		bin = DefaultBin
	}
	return &Client{runner: runner, bin: bin}
}

// List returns the formatted container table for all containers.
func (c *Client) List() string {
	events.Podman.List()
	return c.runner.Capture(c.bin, "ps", "-a", "--format", psFormat)
}

// Start starts the container and returns the command output.
func (c *Client) Start(id string) string {
	events.Podman.Start(id)
	return c.runner.Capture(c.bin, "start", id)
}

// Stop stops the container and returns the command output.
func (c *Client) Stop(id string) string {
	events.Podman.Stop(id)
	return c.runner.Capture(c.bin, "stop", id)
}

// ShellCommand builds the interactive exec invocation for the given shell.
// The child inherits the terminal, so the UI must release it first.
func (c *Client) ShellCommand(id, shell string) *exec.Cmd {
	events.Podman.Shell(id, shell)
	return c.runner.Command(c.bin, "exec", "-it", id, shell)
}

// Shells returns the shell candidates in fallback order.
func (c *Client) Shells() []string {
	return append([]string(nil), shells...)
}
