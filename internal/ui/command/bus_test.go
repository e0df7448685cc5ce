package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/widget"
)

func newBus(t *testing.T) (*Bus, *widget.Widget) {
	t.Helper()
	el := element.New("fruit",
		element.OptionChild(element.Option{Value: "a", Text: "Apple"}),
		element.OptionChild(element.Option{Value: "b", Text: "Banana"}),
	)
	reg := widget.NewRegistry()
	w := reg.Bind(el, widget.DefaultConfig())
	return New(reg, el), w
}

func TestExecuteRunsMethodAndReportsResult(t *testing.T) {
	bus, w := newBus(t)

	cmd := bus.Execute(Request{Method: "checkAll"})
	// the call happens before the command is run
	assert.Equal(t, []string{"a", "b"}, w.GetSelects(widget.SelectValue))

	msg := cmd()
	res, ok := msg.(Result)
	require.True(t, ok)
	assert.Equal(t, "checkAll", res.Method)
	assert.NoError(t, res.Err)

	value, err := bus.Run(Request{Method: "getSelects", Args: []any{"text"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana"}, value)
}

func TestExecuteUnknownMethod(t *testing.T) {
	bus, _ := newBus(t)
	res := bus.Execute(Request{Method: "explode"})().(Result)
	assert.True(t, errors.Is(res.Err, widget.ErrUnknownMethod))
}

func TestRunWithoutRegistry(t *testing.T) {
	var bus *Bus
	_, err := bus.Run(Request{Method: "open"})
	assert.Error(t, err)
}
