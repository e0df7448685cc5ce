package widget

import (
	"strings"

	"github.com/atomicstack/multiselect/internal/diacritics"
	"github.com/atomicstack/multiselect/internal/logging/events"
)

// filter applies the search input to the list. Matching ignores case and
// diacritics; disabled items are hidden while a query is active and a group
// header stays visible only while one of its enabled children does.
func (w *Widget) filter() {
	query := ""
	if w.popup.Search != nil {
		query = strings.ToLower(strings.TrimSpace(w.popup.Search.Value))
	}
	list := w.popup.List

	if query == "" {
		for _, r := range list.Rows {
			r.Hidden = false
		}
		if w.popup.SelectAll != nil {
			w.popup.SelectAll.Hidden = false
		}
		list.NoResults.Hidden = true
	} else {
		for _, r := range list.Rows {
			if r.Kind != RowItem {
				continue
			}
			if r.Disabled {
				r.Hidden = true
				continue
			}
			r.Hidden = !diacritics.Contains(textContent(r.Text), query)
		}
		visible := w.visibleItems()
		for _, g := range w.groupRows() {
			g.Hidden = len(inGroup(visible, g.Group)) == 0
		}
		matched := len(visible) > 0
		if w.popup.SelectAll != nil {
			w.popup.SelectAll.Hidden = !matched
		}
		list.NoResults.Hidden = matched
	}

	events.Filter.Apply(w.name(), query, len(w.visibleItems()))
	w.updateGroupSelects()
	w.updateSelectAll(false)
	call1(w.cfg.Hooks.OnFilter, query)
}

func call1[T any](fn func(T), arg T) {
	if fn != nil {
		fn(arg)
	}
}
