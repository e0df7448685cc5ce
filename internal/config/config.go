package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/multiselect/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envOptions     = "MULTISELECT_OPTIONS"
	envConfig      = "MULTISELECT_CONFIG"
	envSingle      = "MULTISELECT_SINGLE"
	envFilter      = "MULTISELECT_FILTER"
	envPlaceholder = "MULTISELECT_PLACEHOLDER"
	envWidth       = "MULTISELECT_WIDTH"
	envHeight      = "MULTISELECT_HEIGHT"
	envOutput      = "MULTISELECT_OUTPUT"
	envWatch       = "MULTISELECT_WATCH"
	envFooter      = "MULTISELECT_FOOTER"
	envTrace       = "MULTISELECT_TRACE"
	envLogFile     = "MULTISELECT_LOG_FILE"
)

// Outputs lists the accepted --output formats.
var Outputs = []string{"values", "text", "label", "table"}

// ErrMissingOptions is returned by Validate when no option file is set.
var ErrMissingOptions = errors.New("an option file is required (--options)")

// Values holds the flag destinations registered by Bind.
type Values struct {
	options     string
	settings    string
	single      bool
	filter      bool
	placeholder string
	width       int
	height      int
	output      string
	watch       bool
	footer      bool
	trace       bool
	logFile     string
}

// Bind registers the runtime flags on fs. Environment variables supply the
// defaults so explicit flags always win.
func Bind(fs *pflag.FlagSet, environ []string) *Values {
	env := parseEnv(environ)
	v := &Values{}
	fs.StringVarP(&v.options, "options", "o", envOrDefault(env, envOptions, ""), "YAML file describing the options to pick from")
	fs.StringVarP(&v.settings, "config", "c", envOrDefault(env, envConfig, ""), "widget settings file (yaml, json or toml)")
	fs.BoolVar(&v.single, "single", envOrBool(env, envSingle, false), "allow only one selection")
	fs.BoolVar(&v.filter, "filter", envOrBool(env, envFilter, false), "show a search input in the popup")
	fs.StringVar(&v.placeholder, "placeholder", envOrDefault(env, envPlaceholder, ""), "text shown while nothing is selected")
	fs.IntVar(&v.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&v.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.StringVar(&v.output, "output", envOrDefault(env, envOutput, "values"), "selection output: "+strings.Join(Outputs, "|"))
	fs.BoolVar(&v.watch, "watch", envOrBool(env, envWatch, false), "reload options and settings when their files change")
	fs.BoolVar(&v.footer, "footer", envOrBool(env, envFooter, false), "show a key help footer")
	fs.BoolVar(&v.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&v.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return v
}

// Config assembles the parsed flag values. args is recorded for tracing.
func (v *Values) Config(args []string) (Config, error) {
	if v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", v.width)
	}
	if v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", v.height)
	}
	if !slices.Contains(Outputs, v.output) {
		return Config{}, fmt.Errorf("output must be one of %s (got %q)", strings.Join(Outputs, ", "), v.output)
	}

	cfg := Config{
		App: app.Config{
			OptionsPath:  v.options,
			SettingsPath: v.settings,
			Single:       v.single,
			Filter:       v.filter,
			Placeholder:  v.placeholder,
			Width:        v.width,
			Height:       v.height,
			Output:       v.output,
			Watch:        v.watch,
			ShowFooter:   v.footer,
		},
		Logging: Logging{
			FilePath: v.logFile,
			Trace:    v.trace,
		},
		Flags: map[string]string{
			"options":     v.options,
			"config":      v.settings,
			"single":      strconv.FormatBool(v.single),
			"filter":      strconv.FormatBool(v.filter),
			"placeholder": v.placeholder,
			"width":       strconv.Itoa(v.width),
			"height":      strconv.Itoa(v.height),
			"output":      v.output,
			"watch":       strconv.FormatBool(v.watch),
			"footer":      strconv.FormatBool(v.footer),
			"trace":       strconv.FormatBool(v.trace),
			"logFile":     v.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("multiselect", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return v.Config(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.OptionsPath) == "" {
		return ErrMissingOptions
	}
	return nil
}
