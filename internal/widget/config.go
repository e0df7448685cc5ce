package widget

import (
	"reflect"

	"github.com/atomicstack/multiselect/internal/element"
)

// Settings holds every plain data option a widget recognises. It is
// comparable so two configurations can be checked for equality with ==.
type Settings struct {
	Name                          string    `mapstructure:"name" yaml:"name" json:"name,omitempty"`
	IsOpen                        bool      `mapstructure:"is_open" yaml:"is_open" json:"is_open,omitempty"`
	Placeholder                   string    `mapstructure:"placeholder" yaml:"placeholder" json:"placeholder,omitempty"`
	SelectAll                     bool      `mapstructure:"select_all" yaml:"select_all" json:"select_all"`
	SelectAllDelimiter            [2]string `mapstructure:"select_all_delimiter" yaml:"select_all_delimiter" json:"select_all_delimiter"`
	MinimumCountSelected          int       `mapstructure:"minimum_count_selected" yaml:"minimum_count_selected" json:"minimum_count_selected"`
	Ellipsis                      bool      `mapstructure:"ellipsis" yaml:"ellipsis" json:"ellipsis,omitempty"`
	Multiple                      bool      `mapstructure:"multiple" yaml:"multiple" json:"multiple,omitempty"`
	MultipleWidth                 int       `mapstructure:"multiple_width" yaml:"multiple_width" json:"multiple_width"`
	Single                        bool      `mapstructure:"single" yaml:"single" json:"single,omitempty"`
	Filter                        bool      `mapstructure:"filter" yaml:"filter" json:"filter,omitempty"`
	FilterAcceptOnEnter           bool      `mapstructure:"filter_accept_on_enter" yaml:"filter_accept_on_enter" json:"filter_accept_on_enter,omitempty"`
	OffsetLeft                    int       `mapstructure:"offset_left" yaml:"offset_left" json:"offset_left,omitempty"`
	AutoAdjustDropHeight          bool      `mapstructure:"auto_adjust_drop_height" yaml:"auto_adjust_drop_height" json:"auto_adjust_drop_height,omitempty"`
	AdjustHeightPadding           int       `mapstructure:"adjust_height_padding" yaml:"adjust_height_padding" json:"adjust_height_padding"`
	AutoAdjustDropPosition        bool      `mapstructure:"auto_adjust_drop_position" yaml:"auto_adjust_drop_position" json:"auto_adjust_drop_position,omitempty"`
	AutoDropWidth                 bool      `mapstructure:"auto_drop_width" yaml:"auto_drop_width" json:"auto_drop_width,omitempty"`
	AutoAdjustDropWidthByTextSize bool      `mapstructure:"auto_adjust_drop_width_by_text_size" yaml:"auto_adjust_drop_width_by_text_size" json:"auto_adjust_drop_width_by_text_size,omitempty"`
	Width                         int       `mapstructure:"width" yaml:"width" json:"width,omitempty"`
	DropWidth                     int       `mapstructure:"drop_width" yaml:"drop_width" json:"drop_width,omitempty"`
	MaxHeight                     int       `mapstructure:"max_height" yaml:"max_height" json:"max_height"`
	MaxWidth                      int       `mapstructure:"max_width" yaml:"max_width" json:"max_width"`
	MinWidth                      int       `mapstructure:"min_width" yaml:"min_width" json:"min_width,omitempty"`
	Container                     string    `mapstructure:"container" yaml:"container" json:"container,omitempty"`
	Position                      string    `mapstructure:"position" yaml:"position" json:"position" jsonschema:"enum=bottom,enum=top"`
	KeepOpen                      bool      `mapstructure:"keep_open" yaml:"keep_open" json:"keep_open,omitempty"`
	Animate                       string    `mapstructure:"animate" yaml:"animate" json:"animate" jsonschema:"enum=none,enum=fade,enum=slide"`
	DisplayValues                 bool      `mapstructure:"display_values" yaml:"display_values" json:"display_values,omitempty"`
	Delimiter                     string    `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter"`
	AddTitle                      bool      `mapstructure:"add_title" yaml:"add_title" json:"add_title,omitempty"`
	HideOptgroupCheckboxes        bool      `mapstructure:"hide_optgroup_checkboxes" yaml:"hide_optgroup_checkboxes" json:"hide_optgroup_checkboxes,omitempty"`
	OpenOnHover                   bool      `mapstructure:"open_on_hover" yaml:"open_on_hover" json:"open_on_hover,omitempty"`
	OKButton                      bool      `mapstructure:"ok_button" yaml:"ok_button" json:"ok_button,omitempty"`
	OKButtonText                  string    `mapstructure:"ok_button_text" yaml:"ok_button_text" json:"ok_button_text"`
	SelectAllText                 string    `mapstructure:"select_all_text" yaml:"select_all_text" json:"select_all_text"`
	AllSelected                   string    `mapstructure:"all_selected" yaml:"all_selected" json:"all_selected"`
	CountSelected                 string    `mapstructure:"count_selected" yaml:"count_selected" json:"count_selected"`
	NoMatchesFound                string    `mapstructure:"no_matches_found" yaml:"no_matches_found" json:"no_matches_found"`
	UseOptionLabel                bool      `mapstructure:"use_option_label" yaml:"use_option_label" json:"use_option_label,omitempty"`
	UseOptionLabelHTML            bool      `mapstructure:"use_option_label_html" yaml:"use_option_label_html" json:"use_option_label_html,omitempty"`

	// Element metrics used by the layout engine.
	FilterHeight    int `mapstructure:"filter_height" yaml:"filter_height" json:"filter_height"`
	OKButtonHeight  int `mapstructure:"ok_button_height" yaml:"ok_button_height" json:"ok_button_height"`
	SelectAllHeight int `mapstructure:"select_all_height" yaml:"select_all_height" json:"select_all_height"`
	SidePadding     int `mapstructure:"side_padding" yaml:"side_padding" json:"side_padding"`
}

// DefaultSettings returns the settings a widget uses when none are given.
func DefaultSettings() Settings {
	return Settings{
		SelectAll:            true,
		SelectAllDelimiter:   [2]string{"[", "]"},
		MinimumCountSelected: 3,
		MultipleWidth:        80,
		AdjustHeightPadding:  10,
		MaxHeight:            250,
		MaxWidth:             500,
		Position:             "bottom",
		Animate:              "none",
		Delimiter:            ", ",
		OKButtonText:         "OK",
		SelectAllText:        "Select all",
		AllSelected:          "All selected",
		CountSelected:        "# of % selected",
		NoMatchesFound:       "No matches found",
		FilterHeight:         32,
		OKButtonHeight:       26,
		SelectAllHeight:      39,
		SidePadding:          26,
	}
}

// Templates customise how rows render. Nil fields fall back to the
// defaults.
type Templates struct {
	// Styler returns an inline style for the row with the given value, or
	// false for none.
	Styler func(value string) (string, bool)
	// TextTemplate renders an option's row text.
	TextTemplate func(o element.Option) string
	// LabelTemplate renders a group's header text.
	LabelTemplate func(g element.Group) string
}

// ClickEvent is delivered to Hooks.OnClick.
type ClickEvent struct {
	Label    string
	Value    string
	Checked  bool
	Instance *Widget
}

// GroupClickEvent is delivered to Hooks.OnOptgroupClick.
type GroupClickEvent struct {
	Label    string
	Checked  bool
	Children []Row
	Instance *Widget
}

// Hooks are optional callbacks. A nil hook does nothing.
type Hooks struct {
	OnOpen          func()
	OnClose         func()
	OnCheckAll      func()
	OnUncheckAll    func()
	OnFocus         func()
	OnBlur          func()
	OnOptgroupClick func(GroupClickEvent)
	OnClick         func(ClickEvent)
	OnFilter        func(query string)
	OnAfterCreate   func()
}

// Config is the complete configuration of a widget.
type Config struct {
	Settings
	Templates Templates
	Hooks     Hooks
	Data      map[string]any
}

// DefaultConfig returns a Config with DefaultSettings and no templates or
// hooks.
func DefaultConfig() Config {
	return Config{Settings: DefaultSettings()}
}

// Equal reports whether c and other are identical in every field. Functions
// are compared by identity and Data by deep equality.
func (c Config) Equal(other Config) bool {
	if c.Settings != other.Settings {
		return false
	}
	funcs := [][2]any{
		{c.Templates.Styler, other.Templates.Styler},
		{c.Templates.TextTemplate, other.Templates.TextTemplate},
		{c.Templates.LabelTemplate, other.Templates.LabelTemplate},
		{c.Hooks.OnOpen, other.Hooks.OnOpen},
		{c.Hooks.OnClose, other.Hooks.OnClose},
		{c.Hooks.OnCheckAll, other.Hooks.OnCheckAll},
		{c.Hooks.OnUncheckAll, other.Hooks.OnUncheckAll},
		{c.Hooks.OnFocus, other.Hooks.OnFocus},
		{c.Hooks.OnBlur, other.Hooks.OnBlur},
		{c.Hooks.OnOptgroupClick, other.Hooks.OnOptgroupClick},
		{c.Hooks.OnClick, other.Hooks.OnClick},
		{c.Hooks.OnFilter, other.Hooks.OnFilter},
		{c.Hooks.OnAfterCreate, other.Hooks.OnAfterCreate},
	}
	for _, pair := range funcs {
		if funcPointer(pair[0]) != funcPointer(pair[1]) {
			return false
		}
	}
	return reflect.DeepEqual(c.Data, other.Data)
}

func funcPointer(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

func (c Config) styler(value string) (string, bool) {
	if c.Templates.Styler == nil {
		return "", false
	}
	return c.Templates.Styler(value)
}

func (c Config) text(o element.Option) string {
	if c.Templates.TextTemplate == nil {
		return o.Text
	}
	return c.Templates.TextTemplate(o)
}

func (c Config) label(g element.Group) string {
	if c.Templates.LabelTemplate == nil {
		return g.Label
	}
	return c.Templates.LabelTemplate(g)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
