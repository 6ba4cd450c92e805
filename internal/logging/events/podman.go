package events

import "vtpod.dev/vtpod/internal/logging"

type PodmanTracer struct{}

var Podman = PodmanTracer{}

func (PodmanTracer) List() {
	logging.Trace("podman.list", nil)
}

func (PodmanTracer) Start(target string) {
	logging.Trace("podman.start", map[string]interface{}{"target": target})
}

func (PodmanTracer) Stop(target string) {
	logging.Trace("podman.stop", map[string]interface{}{"target": target})
}

func (PodmanTracer) Shell(target, shell string) {
	logging.Trace("podman.shell", map[string]interface{}{"target": target, "shell": shell})
}

func (PodmanTracer) ShellFallback(target, from, to string, err error) {
	payload := map[string]interface{}{"target": target, "from": from, "to": to}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("podman.shell.fallback", payload)
}

func (PodmanTracer) ShellExit(target, shell string, err error) {
	payload := map[string]interface{}{"target": target, "shell": shell}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("podman.shell.exit", payload)
}
