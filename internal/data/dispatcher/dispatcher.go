package dispatcher

import (
	"github.com/atomicstack/multiselect/internal/backend"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/logging/events"
	"github.com/atomicstack/multiselect/internal/widget"
)

// Target is the widget side of a reload.
type Target interface {
	Refresh()
	RefreshOptions(cfg widget.Config) bool
	GetOptions() widget.Config
}

type Result struct {
	OptionsUpdated  bool
	SettingsUpdated bool
	Rebuilt         bool
	Err             error
}

type Dispatcher struct {
	el       *element.Select
	target   Target
	override func(widget.Settings) widget.Settings
}

// New returns a dispatcher writing reloads into el and target. override, if
// set, is applied to reloaded settings so command line flags keep winning.
func New(el *element.Select, target Target, override func(widget.Settings) widget.Settings) *Dispatcher {
	return &Dispatcher{el: el, target: target, override: override}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		switch evt.Kind {
		case backend.KindOptions:
			events.Options.Error(evt.Path, evt.Err)
		case backend.KindSettings:
			events.Config.Error(evt.Path, evt.Err)
		}
		return res
	}
	switch evt.Kind {
	case backend.KindOptions:
		if src, ok := evt.Data.(element.Source); ok {
			src.Apply(d.el)
			d.target.Refresh()
			events.Options.Reload(evt.Path, len(src.Children))
			res.OptionsUpdated = true
		}
	case backend.KindSettings:
		if s, ok := evt.Data.(widget.Settings); ok {
			if d.override != nil {
				s = d.override(s)
			}
			cfg := d.target.GetOptions()
			cfg.Settings = s
			res.Rebuilt = d.target.RefreshOptions(cfg)
			events.Config.Reload(evt.Path, res.Rebuilt)
			res.SettingsUpdated = true
		}
	}
	return res
}
