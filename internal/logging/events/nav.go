package events

import "github.com/atomicstack/runmenu/internal/logging"

type NavTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Cursor(node string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"node": node, "cursor": cursor})
}

func (NavTracer) Descend(from, to string, depth int) {
	logging.Trace("nav.descend", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Ascend(from, to string, depth int) {
	logging.Trace("nav.ascend", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Activate(node, label string) {
	logging.Trace("nav.activate", map[string]interface{}{"node": node, "label": label})
}

func (CommandTracer) Queue(label string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label})
}

func (CommandTracer) Skip(label string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"label": label, "msg": msgType})
}
