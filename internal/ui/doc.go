// Package ui contains the Bubble Tea program that powers the vtpod menu.
// The Model type focuses on message orchestration while dedicated helpers own
// navigation, input, command dispatch, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses by navigation,
//     window sizes by the renderer, command results by the dispatcher).
//     Messages without a handler are ignored, which is how mouse, focus, and
//     paste events are consumed without state changes.
//   - Navigation helpers (navigation.go) implement the screen transition
//     rules: cursor wrapping on list screens, Enter resolving the static menu
//     definition, and the fixed Esc parents. Input helpers (input.go) keep
//     the text-entry screen isolated behind bubbles/textinput.
//   - Captured commands run via tea.Cmd closures that come back as
//     actionResultMsg (commands.go). Interactive shells go through
//     tea.ExecProcess, which releases the terminal to the child and restores
//     raw mode afterwards on every path; shellExitMsg drives the fallback
//     from /bin/sh to /bin/bash.
//
// While a command is in flight the model holds a pending ID and ignores
// navigation keys; results carrying a different ID are dropped as stale.
// This expresses the intentionally blocking execution model in Bubble Tea
// terms without giving up terminal restoration guarantees.
package ui
