package widget

import (
	"fmt"

	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/layout"
)

// RowKind distinguishes list rows.
type RowKind int

const (
	RowItem RowKind = iota
	RowGroup
)

// Row is one entry in the popup list: a checkable item or a group header.
type Row struct {
	Kind        RowKind
	Name        string
	Value       string
	Text        string
	Label       string
	Title       string
	Class       string
	Style       string
	Group       string
	Disabled    bool
	Checked     bool
	Hidden      bool
	Selected    bool
	HasCheckbox bool
	Radio       bool
	Multiple    bool
	Width       int
}

// NoResults is the trailing row shown when a filter matches nothing.
type NoResults struct {
	Text   string
	Hidden bool
}

// List holds the popup rows. A new List is created on every build.
type List struct {
	Rows      []*Row
	NoResults NoResults
}

// SearchInput is the popup's filter field.
type SearchInput struct {
	Value   string
	Focused bool
}

// Toggle is the select-all control.
type Toggle struct {
	Name    string
	Text    string
	Checked bool
	Hidden  bool
}

// Button is the popup's confirm button.
type Button struct {
	Text string
}

// Popup is the floating panel model.
type Popup struct {
	Name          string
	Search        *SearchInput
	SelectAll     *Toggle
	List          *List
	OK            *Button
	Width         int
	MaxWidth      int
	ListMaxHeight int
	Position      layout.Position
	Top           int
	Left          int
	Positioned    bool
	Container     string
	Mounted       bool
	Visible       bool
	Animation     string
}

// Choice is the always-visible trigger that shows the selection summary.
type Choice struct {
	Text        string
	Placeholder bool
	HTML        bool
	Title       string
	Disabled    bool
	Open        bool
	Focused     bool
}

func (w *Widget) build() {
	s := w.cfg.Settings
	name := w.name()
	p := &Popup{
		Name:          name,
		Position:      layout.ParsePosition(s.Position),
		ListMaxHeight: s.MaxHeight,
		Container:     s.Container,
		Animation:     animation(s.Animate, false),
		Width:         s.DropWidth,
	}
	if s.Width > 0 {
		p.Width = s.Width
	}
	if s.Filter {
		p.Search = &SearchInput{}
	}
	if s.SelectAll && !s.Single {
		p.SelectAll = &Toggle{
			Name: "selectAll" + name,
			Text: s.SelectAllDelimiter[0] + s.SelectAllText + s.SelectAllDelimiter[1],
		}
	}

	list := &List{NoResults: NoResults{Text: s.NoMatchesFound, Hidden: true}}
	for i, child := range w.el.Children() {
		switch child.Kind {
		case element.KindOption:
			list.Rows = append(list.Rows, w.itemRow(child.Option, "", false))
		case element.KindGroup:
			g := child.Group
			id := fmt.Sprintf("group_%d", i)
			list.Rows = append(list.Rows, &Row{
				Kind:        RowGroup,
				Name:        "selectGroup" + name,
				Text:        w.cfg.label(g),
				Label:       g.Label,
				Group:       id,
				Disabled:    g.Disabled,
				HasCheckbox: !s.HideOptgroupCheckboxes && !s.Single,
			})
			for _, o := range g.Options {
				list.Rows = append(list.Rows, w.itemRow(o, id, g.Disabled))
			}
		}
	}
	if s.Single {
		keepFirstChecked(list.Rows)
	}
	p.List = list

	if s.OKButton {
		p.OK = &Button{Text: s.OKButtonText}
	}
	w.popup = p
}

// keepFirstChecked leaves a single checked item: the first enabled one in
// document order, or the first disabled one when no enabled item is checked.
func keepFirstChecked(rows []*Row) {
	var keep *Row
	for _, r := range rows {
		if r.Kind != RowItem || !r.Checked {
			continue
		}
		if keep == nil || (keep.Disabled && !r.Disabled) {
			keep = r
		}
	}
	for _, r := range rows {
		if r.Kind == RowItem && r != keep {
			r.Checked = false
		}
	}
}

func (w *Widget) itemRow(o element.Option, group string, groupDisabled bool) *Row {
	s := w.cfg.Settings
	r := &Row{
		Kind:        RowItem,
		Name:        "selectItem" + w.name(),
		Value:       o.Value,
		Text:        w.cfg.text(o),
		Label:       o.Label,
		Title:       o.Title,
		Class:       o.Class,
		Group:       group,
		Disabled:    groupDisabled || o.Disabled,
		Checked:     o.Selected,
		HasCheckbox: true,
		Radio:       s.Single,
		Multiple:    s.Multiple,
	}
	if style, ok := w.cfg.styler(o.Value); ok {
		r.Style = style
	}
	if s.Multiple {
		r.Width = s.MultipleWidth
	}
	return r
}

func (w *Widget) name() string {
	if w.el.Name != "" {
		return w.el.Name
	}
	return w.cfg.Name
}

func animation(mode string, hide bool) string {
	switch mode {
	case "fade":
		if hide {
			return "fadeOut"
		}
		return "fadeIn"
	case "slide":
		if hide {
			return "slideUp"
		}
		return "slideDown"
	}
	if hide {
		return "hide"
	}
	return "show"
}

// enabledItems returns the item rows that can be checked.
func (w *Widget) enabledItems() []*Row {
	var out []*Row
	for _, r := range w.popup.List.Rows {
		if r.Kind == RowItem && !r.Disabled {
			out = append(out, r)
		}
	}
	return out
}

func (w *Widget) disabledItems() []*Row {
	var out []*Row
	for _, r := range w.popup.List.Rows {
		if r.Kind == RowItem && r.Disabled {
			out = append(out, r)
		}
	}
	return out
}

func (w *Widget) visibleItems() []*Row {
	var out []*Row
	for _, r := range w.enabledItems() {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

func (w *Widget) groupRows() []*Row {
	var out []*Row
	for _, r := range w.popup.List.Rows {
		if r.Kind == RowGroup {
			out = append(out, r)
		}
	}
	return out
}

func (w *Widget) groupCheckboxes() []*Row {
	var out []*Row
	for _, r := range w.groupRows() {
		if r.HasCheckbox {
			out = append(out, r)
		}
	}
	return out
}

func inGroup(rows []*Row, group string) []*Row {
	var out []*Row
	for _, r := range rows {
		if r.Group == group {
			out = append(out, r)
		}
	}
	return out
}

func countChecked(rows []*Row) int {
	n := 0
	for _, r := range rows {
		if r.Checked {
			n++
		}
	}
	return n
}

func allChecked(rows []*Row) bool {
	return len(rows) > 0 && countChecked(rows) == len(rows)
}

func setChecked(rows []*Row, checked bool) {
	for _, r := range rows {
		r.Checked = checked
	}
}
