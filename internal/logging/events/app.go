package events

import "github.com/atomicstack/runmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Selected(command string) {
	logging.Trace("app.selected", map[string]interface{}{"command": command})
}

func (AppTracer) Quit(depth int) {
	logging.Trace("app.quit", map[string]interface{}{"depth": depth})
}
