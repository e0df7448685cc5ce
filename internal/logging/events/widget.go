package events

import "github.com/atomicstack/multiselect/internal/logging"

type WidgetTracer struct{}

type FilterTracer struct{}

var (
	Widget = WidgetTracer{}
	Filter = FilterTracer{}
)

func (WidgetTracer) Build(name string, rows int) {
	logging.Trace("widget.build", map[string]interface{}{"name": name, "rows": rows})
}

func (WidgetTracer) Open(name, position string, listHeight int) {
	logging.Trace("widget.open", map[string]interface{}{
		"name":     name,
		"position": position,
		"height":   listHeight,
	})
}

func (WidgetTracer) Close(name string) {
	logging.Trace("widget.close", map[string]interface{}{"name": name})
}

func (WidgetTracer) RefreshSkipped(name string) {
	logging.Trace("widget.refresh.skip", map[string]interface{}{"name": name})
}

func (WidgetTracer) Change(name string, values []string) {
	logging.Trace("widget.change", map[string]interface{}{"name": name, "values": values})
}

func (WidgetTracer) Destroy(name string) {
	logging.Trace("widget.destroy", map[string]interface{}{"name": name})
}

func (FilterTracer) Apply(name, query string, visible int) {
	logging.Trace("filter.apply", map[string]interface{}{"name": name, "query": query, "visible": visible})
}

func (FilterTracer) Append(name, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"name": name, "filter": filter})
}

func (FilterTracer) Backspace(name, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"name": name, "filter": filter})
}

func (FilterTracer) WordBackspace(name, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"name": name, "filter": filter})
}

func (FilterTracer) Cleared(name string) {
	logging.Trace("filter.clear", map[string]interface{}{"name": name})
}

func (FilterTracer) Cursor(name string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"name": name, "cursor": pos})
}

func (FilterTracer) CursorWord(name string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"name": name, "cursor": pos})
}
