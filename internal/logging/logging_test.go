package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "multiselect.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("widget.open", map[string]any{"name": "fruit"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one trace line")
	}
	var got struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &got); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if got.Event != "widget.open" || got.Payload["name"] != "fruit" {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestErrorAppends(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("first"))
	Error(errors.New("second"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first") || !strings.Contains(text, "second") {
		t.Fatalf("expected both errors in log, got %q", text)
	}
}

func TestConfigureEmptyRestoresDefault(t *testing.T) {
	useTempLog(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
