package widget

// Key is a keyboard key the router distinguishes.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyShiftTab
)

// ClickChoice toggles the popup from the trigger button.
func (w *Widget) ClickChoice() {
	if w.destroyed {
		return
	}
	w.toggleOpen()
}

// ClickLabel toggles the popup from the bound element's label and moves
// focus to the trigger unless the search input took it.
func (w *Widget) ClickLabel() {
	if w.destroyed {
		return
	}
	w.toggleOpen()
	if !w.cfg.Filter || !w.isOpen {
		w.Focus()
	}
}

// ClickOK toggles the popup from the confirm button.
func (w *Widget) ClickOK() {
	if w.destroyed || w.popup.OK == nil {
		return
	}
	w.toggleOpen()
}

// Hover opens the popup when OpenOnHover is set.
func (w *Widget) Hover() {
	if w.destroyed || !w.cfg.OpenOnHover {
		return
	}
	w.Open()
}

// KeyDown handles a key pressed anywhere inside the widget. Escape closes
// the popup and returns focus to the trigger.
func (w *Widget) KeyDown(key Key) {
	if w.destroyed {
		return
	}
	if key == KeyEscape {
		w.Close()
		w.Focus()
	}
}

// SearchKeyDown handles a key pressed in the search input. Shift+Tab closes
// the popup.
func (w *Widget) SearchKeyDown(key Key) {
	if w.destroyed || w.popup.Search == nil {
		return
	}
	if key == KeyShiftTab {
		w.Close()
	}
}

// SearchInput stores the search text after a key was released and refilters.
// With FilterAcceptOnEnter, Enter or Space on a non-empty query applies the
// select-all control to the matches and closes instead.
func (w *Widget) SearchInput(text string, key Key) {
	if w.destroyed || w.popup.Search == nil {
		return
	}
	w.popup.Search.Value = text
	if w.cfg.FilterAcceptOnEnter && (key == KeyEnter || key == KeySpace) && text != "" {
		w.ClickSelectAll()
		w.Close()
		w.Focus()
		return
	}
	w.filter()
}

// ClickSelectAll flips the select-all control. When every enabled item is
// visible this is CheckAll or UncheckAll; otherwise only the visible items
// change.
func (w *Widget) ClickSelectAll() {
	if w.destroyed || w.popup.SelectAll == nil {
		return
	}
	checked := !w.popup.SelectAll.Checked
	w.popup.SelectAll.Checked = checked
	visible := w.visibleItems()
	if len(visible) == len(w.enabledItems()) {
		if checked {
			w.CheckAll()
		} else {
			w.UncheckAll()
		}
		return
	}
	setChecked(w.groupCheckboxes(), checked)
	setChecked(visible, checked)
	if checked {
		call(w.cfg.Hooks.OnCheckAll)
	} else {
		call(w.cfg.Hooks.OnUncheckAll)
	}
	w.update(false)
}

// ClickGroup toggles every visible enabled child of the group with the
// given id. Children are checked unless all of them already are.
func (w *Widget) ClickGroup(id string) {
	if w.destroyed {
		return
	}
	var header *Row
	for _, g := range w.groupCheckboxes() {
		if g.Group == id {
			header = g
			break
		}
	}
	if header == nil || header.Disabled {
		return
	}
	children := inGroup(w.visibleItems(), id)
	checked := len(children) != countChecked(children)
	setChecked(children, checked)
	header.Checked = checked
	w.updateSelectAll(false)
	w.update(false)

	event := GroupClickEvent{
		Label:    textContent(header.Text),
		Checked:  checked,
		Children: make([]Row, 0, len(children)),
		Instance: w,
	}
	for _, r := range children {
		event.Children = append(event.Children, *r)
	}
	call1(w.cfg.Hooks.OnOptgroupClick, event)
}

// ClickItem toggles the enabled item with the given value. In single mode
// the item becomes the only checked one and the popup closes unless
// KeepOpen is set.
func (w *Widget) ClickItem(value string) {
	if w.destroyed {
		return
	}
	var item *Row
	for _, r := range w.enabledItems() {
		if r.Value == value {
			item = r
			break
		}
	}
	if item == nil {
		return
	}
	single := w.cfg.Single
	if single {
		for _, r := range w.enabledItems() {
			r.Checked = r == item
		}
	} else {
		item.Checked = !item.Checked
	}

	w.updateSelectAll(false)
	w.update(false)
	w.updateGroupSelects()
	call1(w.cfg.Hooks.OnClick, ClickEvent{
		Label:    textContent(item.Text),
		Value:    item.Value,
		Checked:  item.Checked,
		Instance: w,
	})

	if single && w.isOpen && !w.cfg.KeepOpen {
		w.Close()
	}
}

// FocusChoice reports that the trigger gained focus.
func (w *Widget) FocusChoice() {
	if w.destroyed {
		return
	}
	w.choice.Focused = true
	call(w.cfg.Hooks.OnFocus)
}

// BlurChoice reports that the trigger lost focus.
func (w *Widget) BlurChoice() {
	if w.destroyed {
		return
	}
	w.choice.Focused = false
	call(w.cfg.Hooks.OnBlur)
}
