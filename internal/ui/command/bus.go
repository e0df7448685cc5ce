package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/logging/events"
	"github.com/atomicstack/multiselect/internal/widget"
)

// Request names a widget method and its arguments.
type Request struct {
	Method string
	Args   []any
}

// Result is delivered back to the program once a request ran.
type Result struct {
	Method string
	Value  any
	Err    error
}

// Bus runs widget methods by name against the widget bound to one element.
type Bus struct {
	registry *widget.Registry
	el       *element.Select
}

// New initialises a command bus for el.
func New(registry *widget.Registry, el *element.Select) *Bus {
	return &Bus{registry: registry, el: el}
}

// Execute wraps a method call into a Bubble Tea command while emitting trace
// logs. The call itself runs on the update goroutine because widgets are
// not safe for concurrent use.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Method)
	value, err := b.Run(req)
	return func() tea.Msg {
		return Result{Method: req.Method, Value: value, Err: err}
	}
}

// Run performs the request immediately.
func (b *Bus) Run(req Request) (any, error) {
	if b == nil || b.registry == nil {
		return nil, fmt.Errorf("command bus not initialised")
	}
	value, err := b.registry.Invoke(b.el, req.Method, req.Args...)
	if err != nil {
		events.Command.Error(req.Method, err)
		return nil, err
	}
	events.Command.Result(req.Method, fmt.Sprintf("%T", value))
	return value, nil
}
