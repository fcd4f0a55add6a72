package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Messages.MaxPerTick != defaultMaxPerTick {
		t.Errorf("MaxPerTick = %d, want %d", cfg.Messages.MaxPerTick, defaultMaxPerTick)
	}
	if !cfg.ReleaseCaptureOnMouseUp() {
		t.Error("ReleaseCaptureOnMouseUp should default to true")
	}
	if !cfg.RejectCycles() {
		t.Error("RejectCycles should default to true")
	}
}

func TestParseYAML(t *testing.T) {
	src := `
messages:
  max_per_tick: 50
input:
  drag_threshold: 2.5
  release_capture_on_mouse_up: false
layout:
  reject_cycles: false
debug:
  verbose: true
`
	cfg, err := Parse([]byte(src), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Messages.MaxPerTick != 50 {
		t.Errorf("MaxPerTick = %d, want 50", cfg.Messages.MaxPerTick)
	}
	if cfg.Input.DragThreshold != 2.5 {
		t.Errorf("DragThreshold = %v, want 2.5", cfg.Input.DragThreshold)
	}
	if cfg.ReleaseCaptureOnMouseUp() {
		t.Error("ReleaseCaptureOnMouseUp should be false")
	}
	if cfg.RejectCycles() {
		t.Error("RejectCycles should be false")
	}
	if !cfg.Debug.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestParseTOML(t *testing.T) {
	src := `
[messages]
max_per_tick = 7

[debug]
visual = true
`
	cfg, err := Parse([]byte(src), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Messages.MaxPerTick != 7 {
		t.Errorf("MaxPerTick = %d, want 7", cfg.Messages.MaxPerTick)
	}
	if !cfg.Debug.Visual {
		t.Error("Visual should be true")
	}
	if cfg.Input.DragThreshold != defaultDragThreshold {
		t.Errorf("DragThreshold = %v, want default", cfg.Input.DragThreshold)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format Format
	}{
		{"negative budget", "messages:\n  max_per_tick: -1\n", FormatYAML},
		{"bad yaml", "messages: [", FormatYAML},
		{"bad toml", "[messages\n", FormatTOML},
		{"unknown format", "", Format("ini")},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.src), tt.format); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "ui.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Messages.MaxPerTick != defaultMaxPerTick {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.toml")
	if err := os.WriteFile(path, []byte("[input]\ndrag_threshold = 9.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.DragThreshold != 9 {
		t.Errorf("DragThreshold = %v, want 9", cfg.Input.DragThreshold)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("input: {drag_threshold: -3}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "drag_threshold") {
		t.Errorf("Load(bad) error = %v", err)
	}
}
