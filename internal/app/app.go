package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multiselect/internal/backend"
	"github.com/atomicstack/multiselect/internal/config/settings"
	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/format/table"
	"github.com/atomicstack/multiselect/internal/logging/events"
	"github.com/atomicstack/multiselect/internal/ui"
	"github.com/atomicstack/multiselect/internal/widget"
)

// ErrAborted is returned by Run when the user left without confirming.
var ErrAborted = errors.New("selection aborted")

const reloadInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	OptionsPath  string
	SettingsPath string
	Single       bool
	Filter       bool
	Placeholder  string
	Width        int
	Height       int
	Output       string
	Watch        bool
	ShowFooter   bool
}

// Session is the loaded state a program starts from.
type Session struct {
	Element  *element.Select
	Settings widget.Settings
	loader   *settings.Loader
}

// Load reads the settings and the option file named by cfg.
func Load(cfg Config) (*Session, error) {
	loader := settings.New(cfg.SettingsPath)
	s, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if cfg.SettingsPath != "" {
		events.Config.Load(cfg.SettingsPath)
	}
	src, err := element.DecodeFile(cfg.OptionsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.OptionsPath, err)
	}
	events.Options.Load(cfg.OptionsPath, len(src.Children))
	return &Session{
		Element:  element.NewFromSource(src),
		Settings: cfg.override(s),
		loader:   loader,
	}, nil
}

// override applies command line flags on top of file settings. Flags can
// only switch features on.
func (c Config) override(s widget.Settings) widget.Settings {
	if c.Single {
		s.Single = true
	}
	if c.Filter {
		s.Filter = true
	}
	if c.Placeholder != "" {
		s.Placeholder = c.Placeholder
	}
	return s
}

// Run bootstraps and executes the Bubble Tea program and prints the
// confirmed selection to stdout. The interface is drawn on stderr so the
// result can be captured.
func Run(cfg Config) error {
	return RunWithOutput(cfg, os.Stdout)
}

// RunWithOutput is Run writing the selection to out.
func RunWithOutput(cfg Config, out io.Writer) error {
	sess, err := Load(cfg)
	if err != nil {
		return err
	}
	var watcher *backend.Watcher
	if cfg.Watch {
		var loader *settings.Loader
		if cfg.SettingsPath != "" {
			loader = sess.loader
		}
		watcher, err = backend.NewWatcher(cfg.OptionsPath, loader, reloadInterval)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer watcher.Stop()
	}
	model := ui.NewModel(sess.Element, widget.Config{Settings: sess.Settings}, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
		Override:   cfg.override,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithOutput(os.Stderr))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	if model.Aborted() || !model.Finished() {
		events.App.Finish(nil, true)
		return ErrAborted
	}
	w := model.Widget()
	events.App.Finish(w.GetSelects(widget.SelectValue), false)
	return Write(out, w, cfg.Output)
}

// Write prints the checked items of w in the given output format: one
// value, text or label per line, or a table of value, text and group.
func Write(out io.Writer, w *widget.Widget, output string) error {
	if output == "table" {
		rows := Rows(w)
		if len(rows) == 0 {
			return nil
		}
		columns := []table.Column{{Title: "VALUE"}, {Title: "TEXT"}, {Title: "GROUP"}}
		for _, line := range table.Format(columns, rows) {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		return nil
	}
	kind, err := widget.ParseSelectKind(strings.TrimSuffix(output, "s"))
	if err != nil {
		return fmt.Errorf("output %q: %w", output, err)
	}
	for _, v := range w.GetSelects(kind) {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}

// Rows lists the checked, enabled items as value, text and group label.
func Rows(w *widget.Widget) [][]string {
	list := w.List()
	if list == nil {
		return nil
	}
	groups := make(map[string]string)
	for _, r := range list.Rows {
		if r.Kind == widget.RowGroup {
			groups[r.Group] = r.Label
		}
	}
	var rows [][]string
	for _, r := range list.Rows {
		if r.Kind != widget.RowItem || !r.Checked || r.Disabled {
			continue
		}
		rows = append(rows, []string{r.Value, widget.PlainText(r.Text), groups[r.Group]})
	}
	return rows
}
