package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"handoff/internal/testutil/testlog"
)

func TestDefaultDemoConfig(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultDemoConfig()
	if cfg.Payload != "Hello, World!" {
		t.Fatalf("unexpected payload: %q", cfg.Payload)
	}
	if !reflect.DeepEqual(cfg.Scenarios, []string{"honest", "claiming"}) {
		t.Fatalf("unexpected scenarios: %v", cfg.Scenarios)
	}
	if err := ValidateDemoConfig(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadDemoConfigFillsDefaults(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("payload = \"custom\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Payload != "custom" {
		t.Fatalf("unexpected payload: %q", cfg.Payload)
	}
	if !reflect.DeepEqual(cfg.Scenarios, []string{"honest", "claiming"}) {
		t.Fatalf("scenarios should default: %v", cfg.Scenarios)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level should default: %q", cfg.Log.Level)
	}
}

func TestLoadDemoConfigRejectsUnknownScenario(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "payload = \"x\"\nscenarios = [\"greedy\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadDemoConfig(path); err == nil || !strings.Contains(err.Error(), "scenario[0] invalid") {
		t.Fatalf("expected scenario validation error, got %v", err)
	}
}

func TestLoadDemoConfigMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadDemoConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteTemplate(path, "demo", false); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		t.Fatalf("template must load cleanly: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDemoConfig()) {
		t.Fatalf("template drifted from defaults: %+v", cfg)
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteTemplate(path, "demo", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, "demo", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "demo", true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
}

func TestTemplateUnknownKind(t *testing.T) {
	testlog.Start(t)
	if _, err := Template("ghost"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
