package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/multiselect/internal/app"
	"github.com/atomicstack/multiselect/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stderr", "stdin", "stdout"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			OptionsPath: "fruit.yaml",
			Width:       80,
			Height:      24,
			Output:      "values",
			ShowFooter:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"options": "fruit.yaml",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
		},
		Args: []string{"--options", "fruit.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["options"] != "fruit.yaml" {
		t.Fatalf("expected options flag %q, got %v", "fruit.yaml", flagsValue["options"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestSchemaCommandPrintsJSON(t *testing.T) {
	cmd := newRootCmd(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"schema"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected schema to succeed, got %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("expected valid JSON, got %v\n%s", err, out.String())
	}
	if _, ok := doc["properties"]; !ok {
		t.Fatalf("expected properties in schema, got keys %v", doc)
	}
}

func TestRootCommandRequiresOptions(t *testing.T) {
	cmd := newRootCmd(nil)
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	var exit *exitError
	if !errors.As(err, &exit) || exit.code != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
	if !errors.Is(err, config.ErrMissingOptions) {
		t.Fatalf("expected missing options error, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Configuration error") {
		t.Fatalf("expected configuration error message, got %q", stderr.String())
	}
}

func TestRootCommandRejectsBadOutput(t *testing.T) {
	cmd := newRootCmd(nil)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--options", "fruit.yaml", "--output", "xml"})
	err := cmd.Execute()
	var exit *exitError
	if !errors.As(err, &exit) || exit.code != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
}

func TestParsedArgsFollowCommandArgs(t *testing.T) {
	cmd := newRootCmd(nil)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", "xml", "--options", "fruit.yaml", "--single"})
	_ = cmd.Execute()

	got := parsedArgs(cmd.Flags(), nil)
	want := []string{"--options=fruit.yaml", "--output=xml", "--single=true"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRootCommandUsesEnvironment(t *testing.T) {
	cmd := newRootCmd([]string{"MULTISELECT_OUTPUT=xml", "MULTISELECT_OPTIONS=fruit.yaml"})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "output must be one of") {
		t.Fatalf("expected environment output to be validated, got %v", err)
	}
}
