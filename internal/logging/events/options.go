package events

import "github.com/atomicstack/multiselect/internal/logging"

type OptionsTracer struct{}

type ConfigTracer struct{}

var (
	Options = OptionsTracer{}
	Config  = ConfigTracer{}
)

func (OptionsTracer) Load(path string, children int) {
	logging.Trace("options.load", map[string]interface{}{"path": path, "children": children})
}

func (OptionsTracer) Reload(path string, children int) {
	logging.Trace("options.reload", map[string]interface{}{"path": path, "children": children})
}

func (OptionsTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("options.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (ConfigTracer) Load(path string) {
	logging.Trace("config.load", map[string]interface{}{"path": path})
}

func (ConfigTracer) Reload(path string, rebuilt bool) {
	logging.Trace("config.reload", map[string]interface{}{"path": path, "rebuilt": rebuilt})
}

func (ConfigTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("config.error", map[string]interface{}{"path": path, "error": err.Error()})
}
