package events

import "github.com/atomicstack/multiselect/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(method string) {
	logging.Trace("command.queue", map[string]interface{}{"method": method})
}

func (CommandTracer) Result(method, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"method": method, "msg": msgType})
}

func (CommandTracer) Error(method string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"method": method, "error": err.Error()})
}
