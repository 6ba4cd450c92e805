package events

import "vtpod.dev/vtpod/internal/logging"

type UITracer struct{}

type InputTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Input   = InputTracer{}
	Command = CommandTracer{}
)

func (UITracer) ScreenEnter(screen string) {
	logging.Trace("screen.enter", map[string]interface{}{"screen": screen})
}

func (UITracer) MenuCursor(screen string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) MenuEnter(screen, itemID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"screen": screen,
		"item":   itemID,
		"label":  label,
	})
}

func (UITracer) Quit(screen string) {
	logging.Trace("ui.quit", map[string]interface{}{"screen": screen})
}

type inputReason string

const (
	InputReasonEscape inputReason = "escape"
	InputReasonEmpty  inputReason = "empty"
)

func (InputTracer) Prompt(origin string) {
	logging.Trace("input.prompt", map[string]interface{}{"origin": origin})
}

func (InputTracer) Submit(origin, value string) {
	logging.Trace("input.submit", map[string]interface{}{"origin": origin, "value": value})
}

func (InputTracer) Cancel(origin string, reason inputReason) {
	logging.Trace("input.cancel", map[string]interface{}{"origin": origin, "reason": string(reason)})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id string, size int) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "bytes": size})
}

func (CommandTracer) Stale(id, pending string) {
	logging.Trace("command.stale", map[string]interface{}{"id": id, "pending": pending})
}
