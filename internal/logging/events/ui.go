package events

import "github.com/atomicstack/multiselect/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(key string, open bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "open": open})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Click(target string) {
	logging.Trace("ui.click", map[string]interface{}{"target": target})
}
