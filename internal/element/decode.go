package element

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrEmptyValue is returned when an option in a source file lacks a value
// and text to derive one from.
var ErrEmptyValue = errors.New("option has neither value nor text")

type fileEntry struct {
	Value    string      `yaml:"value"`
	Text     string      `yaml:"text"`
	Label    string      `yaml:"label"`
	Title    string      `yaml:"title"`
	Class    string      `yaml:"class"`
	Disabled bool        `yaml:"disabled"`
	Selected bool        `yaml:"selected"`
	Group    string      `yaml:"group"`
	Options  []fileEntry `yaml:"options"`
}

type fileSelect struct {
	Name     string      `yaml:"name"`
	ID       string      `yaml:"id"`
	Title    string      `yaml:"title"`
	Class    string      `yaml:"class"`
	Disabled bool        `yaml:"disabled"`
	Options  []fileEntry `yaml:"options"`
}

// Source is the decoded form of an option file.
type Source struct {
	Name     string
	ID       string
	Title    string
	Class    string
	Disabled bool
	Children []Child
}

// Decode reads an option source document.
func Decode(r io.Reader) (Source, error) {
	var raw fileSelect
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Source{}, nil
		}
		return Source{}, fmt.Errorf("decode options: %w", err)
	}
	children := make([]Child, 0, len(raw.Options))
	for i, entry := range raw.Options {
		child, err := entry.child()
		if err != nil {
			return Source{}, fmt.Errorf("option %d: %w", i, err)
		}
		children = append(children, child)
	}
	return Source{
		Name:     raw.Name,
		ID:       raw.ID,
		Title:    raw.Title,
		Class:    raw.Class,
		Disabled: raw.Disabled,
		Children: children,
	}, nil
}

// DecodeFile reads an option source from path.
func DecodeFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read options: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Apply copies the source's attributes and children onto s.
func (src Source) Apply(s *Select) {
	if s == nil {
		return
	}
	if src.Name != "" {
		s.Name = src.Name
	}
	if src.ID != "" {
		s.ID = src.ID
	}
	s.Title = src.Title
	s.Class = src.Class
	s.SetDisabled(src.Disabled)
	s.SetChildren(src.Children)
}

// NewFromSource builds a Select from a decoded source.
func NewFromSource(src Source) *Select {
	s := &Select{}
	src.Apply(s)
	return s
}

func (e fileEntry) child() (Child, error) {
	if e.Group != "" || e.Options != nil {
		group := Group{Label: e.Group, Disabled: e.Disabled}
		for i, nested := range e.Options {
			if nested.Group != "" || nested.Options != nil {
				return Child{}, fmt.Errorf("group %q entry %d: groups cannot nest", e.Group, i)
			}
			opt, err := nested.option()
			if err != nil {
				return Child{}, fmt.Errorf("group %q entry %d: %w", e.Group, i, err)
			}
			group.Options = append(group.Options, opt)
		}
		return GroupChild(group), nil
	}
	opt, err := e.option()
	if err != nil {
		return Child{}, err
	}
	return OptionChild(opt), nil
}

func (e fileEntry) option() (Option, error) {
	value := e.Value
	text := e.Text
	if strings.TrimSpace(value) == "" && strings.TrimSpace(text) == "" {
		return Option{}, ErrEmptyValue
	}
	if value == "" {
		value = text
	}
	if text == "" {
		text = value
	}
	return Option{
		Value:    value,
		Text:     text,
		Label:    e.Label,
		Title:    e.Title,
		Class:    e.Class,
		Disabled: e.Disabled,
		Selected: e.Selected,
	}, nil
}
