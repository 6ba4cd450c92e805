package podman

import (
	"testing"

	"vtpod.dev/vtpod/internal/run"
	"vtpod.dev/vtpod/internal/testutil"
)

func assertArgv(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argv = %v, want %v", got, want)
		}
	}
}

func TestListArgv(t *testing.T) {
	rec := &testutil.ExecRecorder{Stdout: "CONTAINER ID  NAMES  STATUS\n"}
	c := NewClient(run.NewWithExec(rec.Exec), "")
	out := c.List()
	assertArgv(t, rec.LastCall(), []string{"podman", "ps", "-a", "--format", psFormat})
	if out != "CONTAINER ID  NAMES  STATUS\n" {
		t.Fatalf("List = %q", out)
	}
}

func TestStartStopArgv(t *testing.T) {
	rec := &testutil.ExecRecorder{Stdout: "abc123\n"}
	c := NewClient(run.NewWithExec(rec.Exec), "")
	c.Start("abc123")
	assertArgv(t, rec.LastCall(), []string{"podman", "start", "abc123"})
	c.Stop("abc123")
	assertArgv(t, rec.LastCall(), []string{"podman", "stop", "abc123"})
}

func TestShellCommandArgv(t *testing.T) {
	rec := &testutil.ExecRecorder{}
	c := NewClient(run.NewWithExec(rec.Exec), "")
	cmd := c.ShellCommand("web", "/bin/sh")
	if cmd == nil {
		t.Fatal("ShellCommand returned nil")
	}
	assertArgv(t, rec.LastCall(), []string{"podman", "exec", "-it", "web", "/bin/sh"})
}

func TestCustomBinaryOverride(t *testing.T) {
	rec := &testutil.ExecRecorder{}
	c := NewClient(run.NewWithExec(rec.Exec), "/usr/local/bin/podman-remote")
	c.List()
	if rec.LastCall()[0] != "/usr/local/bin/podman-remote" {
		t.Fatalf("argv = %v, want custom binary", rec.LastCall())
	}
}

func TestShellsFallbackOrder(t *testing.T) {
	c := NewClient(run.New(), "")
	got := c.Shells()
	want := []string{"/bin/sh", "/bin/bash"}
	assertArgv(t, got, want)

	// Mutating the returned slice must not affect the client.
	got[0] = "/bin/zsh"
	if c.Shells()[0] != "/bin/sh" {
		t.Fatal("Shells must return a copy")
	}
}
