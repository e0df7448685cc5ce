package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/multiselect/internal/logging/events"
)

// SelectKind chooses what GetSelects returns for each checked item.
type SelectKind string

const (
	SelectValue SelectKind = "value"
	SelectText  SelectKind = "text"
	SelectLabel SelectKind = "label"
)

// ParseSelectKind maps a kind name onto a SelectKind. An empty name means
// SelectValue.
func ParseSelectKind(s string) (SelectKind, error) {
	switch SelectKind(s) {
	case "", SelectValue:
		return SelectValue, nil
	case SelectText, SelectLabel:
		return SelectKind(s), nil
	}
	return "", fmt.Errorf("%w: select kind %q", ErrInvalidArgument, s)
}

// GetSelects returns the checked, enabled items in document order. Text and
// label summaries collapse grouped items into "[Group]" when the whole group
// is checked and "[Group: a, b]" otherwise, provided group checkboxes are
// shown.
func (w *Widget) GetSelects(kind SelectKind) []string {
	if w.destroyed {
		return nil
	}
	grouped := kind != SelectValue && len(w.groupCheckboxes()) > 0
	items := w.enabledItems()
	out := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, r := range items {
		if !r.Checked {
			continue
		}
		if grouped && r.Group != "" {
			if seen[r.Group] {
				continue
			}
			seen[r.Group] = true
			if summary, ok := w.groupSummary(r.Group, kind); ok {
				out = append(out, summary)
				continue
			}
		}
		out = append(out, itemSelect(r, kind))
	}
	return out
}

func itemSelect(r *Row, kind SelectKind) string {
	switch kind {
	case SelectText:
		return textContent(r.Text)
	case SelectLabel:
		return r.Label
	}
	return r.Value
}

func (w *Widget) groupSummary(group string, kind SelectKind) (string, bool) {
	var header *Row
	for _, r := range w.groupCheckboxes() {
		if r.Group == group {
			header = r
			break
		}
	}
	if header == nil {
		return "", false
	}
	children := inGroup(w.enabledItems(), group)
	var picked []string
	for _, r := range children {
		if r.Checked {
			picked = append(picked, itemSelect(r, kind))
		}
	}
	title := strings.TrimSpace(textContent(header.Text))
	if kind == SelectLabel {
		title = strings.TrimSpace(header.Label)
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(title)
	if len(children) > len(picked) {
		b.WriteString(": ")
		b.WriteString(strings.Join(picked, ", "))
	}
	b.WriteString("]")
	return b.String(), true
}

// SetSelects checks exactly the enabled items whose value is in values.
// In single mode only the first matching item in document order is kept.
func (w *Widget) SetSelects(values []string) {
	if w.destroyed {
		return
	}
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}
	items := w.enabledItems()
	picked := false
	for _, r := range items {
		r.Checked = want[r.Value] && !(w.cfg.Single && picked)
		picked = picked || r.Checked
	}
	if w.popup.SelectAll != nil {
		w.popup.SelectAll.Checked = allChecked(items)
	}
	for _, g := range w.groupCheckboxes() {
		g.Checked = allChecked(inGroup(items, g.Group))
	}
	w.update(false)
}

// update refreshes the choice text, writes the checked values to the bound
// element and fires its change notification unless ignoreTrigger is set.
func (w *Widget) update(ignoreTrigger bool) {
	s := w.cfg.Settings
	kind := SelectText
	if s.DisplayValues {
		kind = SelectValue
	}
	selects := w.GetSelects(kind)
	enabled := w.enabledItems()
	count := countChecked(enabled)
	total := len(enabled) + len(w.disabledItems())

	c := &w.choice
	c.Placeholder = false
	c.HTML = false
	switch {
	case count == 0:
		c.Text = s.Placeholder
		c.Placeholder = true
	case s.AllSelected != "" && count == len(enabled):
		c.Text = s.AllSelected
	case s.Ellipsis && count > s.MinimumCountSelected:
		n := min(s.MinimumCountSelected, len(selects))
		c.Text = strings.Join(selects[:n], s.Delimiter) + "..."
	case s.CountSelected != "" && count > s.MinimumCountSelected:
		text := strings.Replace(s.CountSelected, "#", strconv.Itoa(count), 1)
		c.Text = strings.Replace(text, "%", strconv.Itoa(total), 1)
	case s.UseOptionLabel || s.UseOptionLabelHTML:
		labels := strings.Join(w.GetSelects(SelectLabel), s.Delimiter)
		if s.UseOptionLabelHTML {
			labels = stripScripts(labels)
			c.HTML = true
		}
		c.Text = labels
	default:
		c.Text = strings.Join(selects, s.Delimiter)
	}

	if s.AddTitle {
		titleKind := SelectText
		if s.UseOptionLabel || s.UseOptionLabelHTML {
			titleKind = SelectLabel
		}
		c.Title = strings.Join(w.GetSelects(titleKind), s.Delimiter)
	}

	values := w.GetSelects(SelectValue)
	w.el.SetValues(values)
	for _, r := range w.popup.List.Rows {
		r.Selected = r.HasCheckbox && r.Checked
	}
	if !ignoreTrigger {
		events.Widget.Change(w.name(), values)
		w.el.TriggerChange()
	}
}

// updateSelectAll recomputes the select-all checkbox. Outside of a build it
// only considers visible items and fires OnCheckAll when every one of them
// is checked.
func (w *Widget) updateSelectAll(isInit bool) {
	items := w.enabledItems()
	if !isInit {
		items = w.visibleItems()
	}
	if w.popup.SelectAll == nil {
		return
	}
	w.popup.SelectAll.Checked = allChecked(items)
	if !isInit && w.popup.SelectAll.Checked {
		call(w.cfg.Hooks.OnCheckAll)
	}
}

// updateGroupSelects recomputes each group checkbox against its visible
// children.
func (w *Widget) updateGroupSelects() {
	visible := w.visibleItems()
	for _, g := range w.groupCheckboxes() {
		g.Checked = allChecked(inGroup(visible, g.Group))
	}
}
