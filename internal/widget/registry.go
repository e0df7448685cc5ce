package widget

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/atomicstack/multiselect/internal/element"
)

var (
	// ErrUnknownMethod is returned by Invoke for a method name it does not
	// recognise.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidArgument is returned by Invoke when an argument has the
	// wrong type.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Methods lists the names Invoke accepts.
var Methods = []string{
	"getSelects", "setSelects",
	"getOptions", "refreshOptions",
	"enable", "disable",
	"open", "close",
	"checkAll", "uncheckAll",
	"focus", "blur",
	"refresh", "destroy",
}

// Invoke calls the named method. getSelects takes an optional SelectKind or
// kind name, setSelects a []string and refreshOptions a Config. The result
// is nil for methods that return nothing.
func (w *Widget) Invoke(method string, args ...any) (any, error) {
	switch method {
	case "getSelects":
		kind := SelectValue
		if len(args) > 0 {
			switch v := args[0].(type) {
			case SelectKind:
				kind = v
			case string:
				k, err := ParseSelectKind(v)
				if err != nil {
					return nil, err
				}
				kind = k
			case nil:
			default:
				return nil, fmt.Errorf("%w: getSelects expects a kind, got %T", ErrInvalidArgument, args[0])
			}
		}
		return w.GetSelects(kind), nil
	case "setSelects":
		values, err := stringsArg(method, args)
		if err != nil {
			return nil, err
		}
		w.SetSelects(values)
	case "getOptions":
		return w.GetOptions(), nil
	case "refreshOptions":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: refreshOptions expects a Config", ErrInvalidArgument)
		}
		cfg, ok := args[0].(Config)
		if !ok {
			return nil, fmt.Errorf("%w: refreshOptions expects a Config, got %T", ErrInvalidArgument, args[0])
		}
		return w.RefreshOptions(cfg), nil
	case "enable":
		w.Enable()
	case "disable":
		w.Disable()
	case "open":
		w.Open()
	case "close":
		w.Close()
	case "checkAll":
		w.CheckAll()
	case "uncheckAll":
		w.UncheckAll()
	case "focus":
		w.Focus()
	case "blur":
		w.Blur()
	case "refresh":
		w.Refresh()
	case "destroy":
		w.Destroy()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	return nil, nil
}

func stringsArg(method string, args []any) ([]string, error) {
	if len(args) == 0 || args[0] == nil {
		return nil, nil
	}
	switch v := args[0].(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s expects strings, got %T", ErrInvalidArgument, method, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s expects []string, got %T", ErrInvalidArgument, method, args[0])
}

// Registry keeps at most one widget per bound element.
type Registry struct {
	mu      sync.Mutex
	widgets map[*element.Select]*Widget
	opts    []Option
}

// NewRegistry returns a Registry whose widgets are built with opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{widgets: make(map[*element.Select]*Widget), opts: opts}
}

// Bind returns the widget bound to el, creating it with cfg on first use.
// An existing widget picks up cfg through RefreshOptions.
func (r *Registry) Bind(el *element.Select, cfg Config) *Widget {
	r.mu.Lock()
	w, ok := r.widgets[el]
	r.mu.Unlock()
	if ok {
		w.RefreshOptions(cfg)
		return w
	}

	w = New(el, cfg, r.opts...)
	w.onDestroy = func() { r.forget(el) }
	r.mu.Lock()
	r.widgets[el] = w
	r.mu.Unlock()
	return w
}

// Lookup returns the widget bound to el, if any.
func (r *Registry) Lookup(el *element.Select) (*Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.widgets[el]
	return w, ok
}

// Len returns the number of bound widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}

// Invoke dispatches method on the widget bound to el, binding one with the
// default configuration first when there is none.
func (r *Registry) Invoke(el *element.Select, method string, args ...any) (any, error) {
	if !slices.Contains(Methods, method) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	w, ok := r.Lookup(el)
	if !ok {
		w = r.Bind(el, DefaultConfig())
	}
	return w.Invoke(method, args...)
}

func (r *Registry) forget(el *element.Select) {
	r.mu.Lock()
	delete(r.widgets, el)
	r.mu.Unlock()
}
