package ui

import (
	"testing"

	"vtpod.dev/vtpod/internal/menu"
	"vtpod.dev/vtpod/internal/testutil"
)

func TestPromptOpensWithEmptyBuffer(t *testing.T) {
	h := newTestHarness(t, &testutil.ExecRecorder{}, Params{RootScreen: "vt"})

	h.Send(keyEnter) // Change VT
	m := h.Model()
	if m.screen.Kind != menu.ScreenInput {
		t.Fatalf("screen = %s, want input", m.screen.Kind)
	}
	if m.screen.Origin != menu.OriginChangeVT {
		t.Fatalf("origin = %s, want vt:change", m.screen.Origin)
	}
	if m.screen.Prompt == "" {
		t.Fatal("prompt text should be set")
	}
	if m.input.Value() != "" {
		t.Fatalf("buffer = %q, want empty", m.input.Value())
	}
}

func TestTypingEditsTheBuffer(t *testing.T) {
	h := newTestHarness(t, &testutil.ExecRecorder{}, Params{RootScreen: "vt"})
	h.Send(keyEnter)

	h.Send(keyRunes("12"))
	if got := h.Model().input.Value(); got != "12" {
		t.Fatalf("buffer = %q, want 12", got)
	}
	h.Send(keyBackspace)
	if got := h.Model().input.Value(); got != "1" {
		t.Fatalf("buffer after backspace = %q, want 1", got)
	}
}

func TestEscapeCancelsToOriginParent(t *testing.T) {
	// Change VT cancels back to the VT menu.
	h := newTestHarness(t, &testutil.ExecRecorder{}, Params{RootScreen: "vt"})
	h.Send(keyEnter)
	h.Send(keyRunes("5"))
	h.Send(keyEsc)
	if got := h.Model().screen.Kind; got != menu.ScreenVT {
		t.Fatalf("screen = %s, want vt", got)
	}

	// Podman prompts cancel back to the podman menu.
	h = newTestHarness(t, &testutil.ExecRecorder{}, Params{RootScreen: "podman"})
	h.Send(keyDown) // Start container
	h.Send(keyEnter)
	h.Send(keyEsc)
	if got := h.Model().screen.Kind; got != menu.ScreenPodman {
		t.Fatalf("screen = %s, want podman", got)
	}
}

func TestCancelledInputIsDiscarded(t *testing.T) {
	h := newTestHarness(t, &testutil.ExecRecorder{}, Params{RootScreen: "vt"})
	h.Send(keyEnter)
	h.Send(keyRunes("7"))
	h.Send(keyEsc)

	// Reopening the prompt starts clean.
	h.Send(keyEnter)
	if got := h.Model().input.Value(); got != "" {
		t.Fatalf("buffer = %q, cancelled text must not survive", got)
	}
}

func TestBlankSubmitShowsEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   "} {
		rec := &testutil.ExecRecorder{}
		h := newTestHarness(t, rec, Params{RootScreen: "podman"})
		h.Send(keyDown) // Start container
		h.Send(keyEnter)
		if text != "" {
			h.Send(keyRunes(text))
		}
		h.Send(keyEnter)

		m := h.Model()
		if m.screen.Kind != menu.ScreenOutput {
			t.Fatalf("screen = %s, want output", m.screen.Kind)
		}
		if m.output != "Empty input" {
			t.Fatalf("output = %q, want Empty input", m.output)
		}
		if len(rec.Calls) != 0 {
			t.Fatalf("blank submit must not spawn a process, saw %v", rec.Calls)
		}
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	rec := &testutil.ExecRecorder{}
	h := newTestHarness(t, rec, Params{RootScreen: "vt"})
	h.Send(keyEnter)
	h.Send(keyRunes("  4  "))
	h.Send(keyEnter)

	want := []string{"sudo", "chvt", "4"}
	got := rec.LastCall()
	if len(got) != len(want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argv = %v, want %v", got, want)
		}
	}
}
