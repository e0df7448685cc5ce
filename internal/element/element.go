// Package element models the native selection element a dropdown widget is
// bound to. The element is the source of truth for values: the widget reads
// its children once per build and writes the checked values back after every
// state change.
package element

import (
	"slices"
	"sync"
)

// Kind distinguishes the two child variants of a selection element.
type Kind int

const (
	KindOption Kind = iota
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Option is a single selectable entry.
type Option struct {
	Value    string
	Text     string
	Label    string
	Title    string
	Class    string
	Disabled bool
	Selected bool
}

// Group is a labelled cluster of options.
type Group struct {
	Label    string
	Disabled bool
	Options  []Option
}

// Child is a tagged variant holding either an Option or a Group.
type Child struct {
	Kind   Kind
	Option Option
	Group  Group
}

// OptionChild wraps an option as a child.
func OptionChild(o Option) Child {
	return Child{Kind: KindOption, Option: o}
}

// GroupChild wraps a group as a child.
func GroupChild(g Group) Child {
	return Child{Kind: KindGroup, Group: g}
}

// Select is the bound element. It is safe for concurrent use so that file
// watchers may replace its children while the UI reads them.
type Select struct {
	Name  string
	ID    string
	Title string
	Class string

	mu        sync.RWMutex
	disabled  bool
	hidden    bool
	children  []Child
	listeners map[int]func()
	nextID    int
}

// New constructs a Select with the supplied children.
func New(name string, children ...Child) *Select {
	s := &Select{Name: name}
	s.SetChildren(children)
	return s
}

// Children returns a deep copy of the element's children.
func (s *Select) Children() []Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneChildren(s.children)
}

// SetChildren replaces the element's children.
func (s *Select) SetChildren(children []Child) {
	s.mu.Lock()
	s.children = cloneChildren(children)
	s.mu.Unlock()
}

// Len returns the number of direct children.
func (s *Select) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.children)
}

// Disabled reports whether the element is disabled.
func (s *Select) Disabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disabled
}

// SetDisabled toggles the element's disabled flag.
func (s *Select) SetDisabled(disabled bool) {
	s.mu.Lock()
	s.disabled = disabled
	s.mu.Unlock()
}

// Hidden reports whether the element is hidden behind a widget.
func (s *Select) Hidden() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hidden
}

// Hide hides the element.
func (s *Select) Hide() {
	s.mu.Lock()
	s.hidden = true
	s.mu.Unlock()
}

// Show restores the element's visibility.
func (s *Select) Show() {
	s.mu.Lock()
	s.hidden = false
	s.mu.Unlock()
}

// Values returns the selected option values in document order.
func (s *Select) Values() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]string, 0)
	walk(s.children, func(o *Option) {
		if o.Selected {
			values = append(values, o.Value)
		}
	})
	return values
}

// SetValues marks exactly the options whose value appears in values as
// selected and clears every other option.
func (s *Select) SetValues(values []string) {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	s.mu.Lock()
	walk(s.children, func(o *Option) {
		_, o.Selected = set[o.Value]
	})
	s.mu.Unlock()
}

// OnChange registers fn to run whenever TriggerChange is called. The returned
// function removes the listener.
func (s *Select) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// TriggerChange notifies change listeners in registration order.
func (s *Select) TriggerChange() {
	s.mu.RLock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	fns := make([]func(), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

func walk(children []Child, fn func(*Option)) {
	for i := range children {
		switch children[i].Kind {
		case KindOption:
			fn(&children[i].Option)
		case KindGroup:
			for j := range children[i].Group.Options {
				fn(&children[i].Group.Options[j])
			}
		}
	}
}

func cloneChildren(children []Child) []Child {
	if children == nil {
		return nil
	}
	dup := make([]Child, len(children))
	copy(dup, children)
	for i := range dup {
		if dup[i].Kind == KindGroup && dup[i].Group.Options != nil {
			opts := make([]Option, len(dup[i].Group.Options))
			copy(opts, dup[i].Group.Options)
			dup[i].Group.Options = opts
		}
	}
	return dup
}
