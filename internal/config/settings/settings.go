// Package settings loads widget settings from a config file and the
// environment, and can watch the file for edits.
package settings

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/atomicstack/multiselect/internal/logging"
	"github.com/atomicstack/multiselect/internal/widget"
)

// EnvPrefix namespaces environment overrides, e.g. MULTISELECT_SETTING_MAX_HEIGHT.
const EnvPrefix = "MULTISELECT_SETTING"

// Loader reads widget.Settings through viper. The zero path means defaults
// plus environment only.
type Loader struct {
	v    *viper.Viper
	path string
}

// New prepares a loader for the settings file at path.
func New(path string) *Loader {
	v := viper.New()
	setDefaults(v, widget.DefaultSettings())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return &Loader{v: v, path: path}
}

// Path returns the watched settings file.
func (l *Loader) Path() string { return l.path }

// Load reads the settings file, if any, and decodes the merged result.
func (l *Loader) Load() (widget.Settings, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return widget.Settings{}, fmt.Errorf("read settings %s: %w", l.path, err)
			}
			logging.Trace("settings.missing", map[string]interface{}{"path": l.path})
		}
	}
	var s widget.Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return widget.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// Watch calls fn with freshly loaded settings whenever the file changes,
// until ctx is done. viper has no way to stop its file watch, so changes
// after that are read but dropped. It does nothing without a file.
func (l *Loader) Watch(ctx context.Context, fn func(widget.Settings, error)) {
	if l.path == "" || fn == nil {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		logging.Trace("settings.changed", map[string]interface{}{"path": e.Name, "op": e.Op.String()})
		var s widget.Settings
		if err := l.v.Unmarshal(&s); err != nil {
			fn(widget.Settings{}, fmt.Errorf("decode settings: %w", err))
			return
		}
		fn(s, nil)
	})
	l.v.WatchConfig()
}

func setDefaults(v *viper.Viper, s widget.Settings) {
	rv := reflect.ValueOf(s)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := rt.Field(i).Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		v.SetDefault(key, rv.Field(i).Interface())
	}
}
