package events

import "vtpod.dev/vtpod/internal/logging"

type VTTracer struct{}

var VT = VTTracer{}

func (VTTracer) Switch(target string) {
	logging.Trace("vt.switch", map[string]interface{}{"target": target})
}

func (VTTracer) EmptyTarget() {
	logging.Trace("vt.switch.empty", nil)
}
