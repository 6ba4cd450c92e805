// Package run executes the external commands the menu delegates to. Captured
// commands collect stdout/stderr and always come back as a display string;
// interactive commands are built here but handed to the terminal by the UI
// layer, which owns the suspend/resume lifecycle.
package run

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecFunc builds the process for a command invocation. Tests substitute it
// to observe argv or script results.
type ExecFunc func(name string, args ...string) *exec.Cmd

// Runner spawns external commands. Arguments are always passed as discrete
// argv entries; nothing goes through a shell.
type Runner struct {
	execCommand ExecFunc
}

// New returns a Runner backed by exec.Command.
func New() *Runner {
	return &Runner{execCommand: exec.Command}
}

// NewWithExec returns a Runner using the provided exec function.
func NewWithExec(fn ExecFunc) *Runner {
	if fn == nil {
		fn = exec.Command
	}
	return &Runner{execCommand: fn}
}

// Capture runs the command with stdout and stderr collected and returns a
// message for display. Success yields decoded stdout. A non-zero exit yields
// stderr when present, otherwise a synthesized summary. A spawn failure
// (missing binary, permissions) yields a message naming the command; it is
// never an error the caller has to handle.
func (r *Runner) Capture(name string, args ...string) string {
	cmd := r.execCommand(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if strings.TrimSpace(stderr.String()) != "" {
				return decode(stderr.Bytes())
			}
			return fmt.Sprintf("Command %q %v failed: %v", name, args, err)
		}
		return fmt.Sprintf("Failed to run %s: %v", name, err)
	}
	return decode(stdout.Bytes())
}

// Command builds a command for interactive use. The caller is responsible for
// handing the terminal over and restoring it afterwards.
func (r *Runner) Command(name string, args ...string) *exec.Cmd {
	return r.execCommand(name, args...)
}

// decode replaces invalid byte sequences so subprocess output is always
// printable.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
