package ui

import (
	"testing"
	"time"

	"vtpod.dev/vtpod/internal/testutil"
)

// The prompt screen schedules cursor blink commands that reschedule
// themselves; harness processing has to stop at them instead of executing
// the cycle.
func TestPromptFlowTerminates(t *testing.T) {
	rec := &testutil.ExecRecorder{}
	h := newTestHarness(t, rec, Params{RootScreen: "vt"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Send(keyEnter) // Change VT
		h.Send(keyRunes("5"))
		h.Send(keyEnter)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("prompt key handling never finished")
	}

	if len(rec.Calls) != 1 {
		t.Fatalf("expected one dispatch, got %v", rec.Calls)
	}
	want := []string{"sudo", "chvt", "5"}
	got := rec.LastCall()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argv = %v, want %v", got, want)
		}
	}
}
