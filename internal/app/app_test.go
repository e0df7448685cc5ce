package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/multiselect/internal/element"
	"github.com/atomicstack/multiselect/internal/testutil"
	"github.com/atomicstack/multiselect/internal/widget"
)

const optionsYAML = `name: food
title: Pick food
options:
  - {value: a, text: Apple, selected: true}
  - {value: b, text: Banana, disabled: true, selected: true}
  - group: Citrus
    options:
      - {value: o, text: Orange, selected: true}
      - {value: l, text: Lemon}
`

func TestLoadReadsOptionsAndSettings(t *testing.T) {
	opts := testutil.WriteFile(t, "options.yaml", optionsYAML)
	conf := testutil.WriteFile(t, "settings.yaml", "placeholder: choose\nfilter: false\nmax_height: 12\n")

	sess, err := Load(Config{OptionsPath: opts, SettingsPath: conf, Filter: true})
	require.NoError(t, err)
	assert.Equal(t, "food", sess.Element.Name)
	assert.Equal(t, "Pick food", sess.Element.Title)
	assert.Equal(t, []string{"a", "b", "o"}, sess.Element.Values())
	assert.Equal(t, "choose", sess.Settings.Placeholder)
	assert.Equal(t, 12, sess.Settings.MaxHeight)
	assert.True(t, sess.Settings.Filter, "flag should switch the filter on")
}

func TestLoadWithoutSettingsUsesDefaults(t *testing.T) {
	opts := testutil.WriteFile(t, "options.yaml", optionsYAML)
	sess, err := Load(Config{OptionsPath: opts, Single: true, Placeholder: "pick"})
	require.NoError(t, err)
	def := widget.DefaultSettings()
	assert.Equal(t, def.MaxHeight, sess.Settings.MaxHeight)
	assert.True(t, sess.Settings.Single)
	assert.Equal(t, "pick", sess.Settings.Placeholder)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Config{OptionsPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	bad := testutil.WriteFile(t, "options.yaml", "options:\n  - {value: a, colour: red}\n")
	_, err = Load(Config{OptionsPath: bad})
	require.Error(t, err)

	opts := testutil.WriteFile(t, "options.yaml", optionsYAML)
	conf := testutil.WriteFile(t, "settings.yaml", "max_height: [1, 2\n")
	_, err = Load(Config{OptionsPath: opts, SettingsPath: conf})
	require.Error(t, err)
}

func TestOverrideOnlySwitchesOn(t *testing.T) {
	s := widget.DefaultSettings()
	s.Single = true
	s.Placeholder = "file"
	got := Config{}.override(s)
	assert.True(t, got.Single)
	assert.Equal(t, "file", got.Placeholder)
}

func testWidget(t *testing.T) *widget.Widget {
	t.Helper()
	opts := testutil.WriteFile(t, "options.yaml", optionsYAML)
	sess, err := Load(Config{OptionsPath: opts})
	require.NoError(t, err)
	return widget.New(sess.Element, widget.Config{Settings: sess.Settings})
}

func TestWriteFormats(t *testing.T) {
	w := testWidget(t)
	cases := map[string]string{
		"values": "a\no\n",
		"":       "a\no\n",
		"text":   "Apple\n[Citrus: Orange]\n",
	}
	for output, want := range cases {
		t.Run(output, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, w, output))
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestWriteTableGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testWidget(t), "table"))
	testutil.AssertGolden(t, "table.golden", buf.String())
}

func TestWriteRejectsUnknownOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testWidget(t), "json")
	require.ErrorIs(t, err, widget.ErrInvalidArgument)
}

func TestWriteEmptyTable(t *testing.T) {
	w := widget.New(element.New("none"), widget.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, w, "table"))
	assert.Empty(t, buf.String())
}
