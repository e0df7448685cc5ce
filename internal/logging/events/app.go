package events

import "github.com/atomicstack/multiselect/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(values []string, aborted bool) {
	logging.Trace("app.finish", map[string]interface{}{"values": values, "aborted": aborted})
}
