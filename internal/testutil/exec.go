// Package testutil provides process-level fakes for tests. External commands
// are replaced with small shell scripts so argv and output handling can be
// exercised without podman or chvt installed.
package testutil

import (
	"fmt"
	"os/exec"
	"strings"
)

// ExecRecorder captures every command invocation and plays back a scripted
// result. The returned process is a real child so the full spawn and capture
// path runs, but it only prints the configured stdout/stderr and exits with
// the configured code.
type ExecRecorder struct {
	Calls    [][]string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exec records the invocation and returns the scripted stand-in process. Pass
// it wherever an exec function is injectable.
func (r *ExecRecorder) Exec(name string, args ...string) *exec.Cmd {
	argv := append([]string{name}, args...)
	r.Calls = append(r.Calls, argv)
	script := fmt.Sprintf("printf '%%s' %s; printf '%%s' %s >&2; exit %d",
		shellQuote(r.Stdout), shellQuote(r.Stderr), r.ExitCode)
	return exec.Command("sh", "-c", script)
}

// LastCall returns the most recent argv, or nil when nothing ran.
func (r *ExecRecorder) LastCall() []string {
	if len(r.Calls) == 0 {
		return nil
	}
	return r.Calls[len(r.Calls)-1]
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
