// Package inputbus fans document level pointer events out to widgets that
// need to know about clicks outside themselves.
package inputbus

import "sync"

// Target identifies what a click landed on.
type Target int

const (
	TargetOutside Target = iota
	TargetChoice
	TargetPopup
	TargetElement
)

func (t Target) String() string {
	switch t {
	case TargetChoice:
		return "choice"
	case TargetPopup:
		return "popup"
	case TargetElement:
		return "element"
	default:
		return "outside"
	}
}

// Click is a pointer press somewhere in the document. Owner is the widget
// the target belongs to, nil for TargetOutside.
type Click struct {
	Target Target
	Owner  any
}

// Bus delivers clicks to subscribers in subscription order.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]func(Click)
	order  []int
	nextID int
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]func(Click))}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (b *Bus) Subscribe(fn func(Click)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(Click))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; !ok {
			return
		}
		delete(b.subs, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers c to every subscriber. Handlers run without the bus lock
// held so they may unsubscribe themselves.
func (b *Bus) Publish(c Click) {
	b.mu.Lock()
	handlers := make([]func(Click), 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.subs[id])
	}
	b.mu.Unlock()
	for _, fn := range handlers {
		fn(c)
	}
}
