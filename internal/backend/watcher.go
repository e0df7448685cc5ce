package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/multiselect/internal/config/settings"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/logging"
	"github.com/atomicstack/multiselect/internal/widget"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindOptions Kind = iota
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindOptions:
		return "options"
	case KindSettings:
		return "settings"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event conveys reloaded data or an error from a file reload. Data is an
// element.Source for KindOptions and a widget.Settings for KindSettings.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Watcher follows the option file and, optionally, the settings file and
// publishes a reload event for each change.
type Watcher struct {
	optionsPath string
	interval    time.Duration
	fs          *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching optionsPath. Reloads of the same file are at
// least interval apart. A nil loader disables settings reloads.
func NewWatcher(optionsPath string, loader *settings.Loader, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	abs, err := filepath.Abs(optionsPath)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	// editors replace files on save, so the directory is watched
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		optionsPath: abs,
		interval:    interval,
		fs:          fsw,
		ctx:         ctx,
		cancel:      cancel,
		events:      make(chan Event, 16),
	}

	w.startOptionsWatcher()
	if loader != nil {
		w.startSettingsWatcher(loader)
	}

	go func() {
		w.wg.Wait()
		w.mu.Lock()
		w.closed = true
		close(w.events)
		w.mu.Unlock()
	}()

	return w, nil
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher: the option file watch exits and settings file
// changes are no longer published. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startOptionsWatcher() {
	throttle := newThrottle(w.interval)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.fs.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			case e, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if !w.relevant(e) {
					continue
				}
				throttle.wait()
				src, err := element.DecodeFile(w.optionsPath)
				if !w.emit(Event{Kind: KindOptions, Path: w.optionsPath, Data: src, Err: err}) {
					return
				}
			}
		}
	}()
}

func (w *Watcher) startSettingsWatcher(loader *settings.Loader) {
	throttle := newThrottle(w.interval)
	path := loader.Path()
	loader.Watch(w.ctx, func(s widget.Settings, err error) {
		if w.ctx.Err() != nil {
			return
		}
		throttle.wait()
		w.emit(Event{Kind: KindSettings, Path: path, Data: s, Err: err})
	})
}

func (w *Watcher) relevant(e fsnotify.Event) bool {
	if filepath.Clean(e.Name) != w.optionsPath {
		return false
	}
	return e.Has(fsnotify.Write) || e.Has(fsnotify.Create)
}

func (w *Watcher) emit(evt Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
