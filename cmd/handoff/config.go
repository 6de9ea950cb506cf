package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"handoff/internal/config"
)

type fileConfig struct {
	Payload   string   `toml:"payload"`
	Scenarios []string `toml:"scenarios"`
	Log       struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
}

// loadDemoConfig starts from defaults and applies only the keys the file
// actually defines. An empty path means defaults as-is.
func loadDemoConfig(path string) (config.DemoConfig, error) {
	cfg := config.DefaultDemoConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.DemoConfig{}, fmt.Errorf("load demo config: %w", err)
	}

	if meta.IsDefined("payload") {
		if p := strings.TrimSpace(raw.Payload); p != "" {
			cfg.Payload = p
		}
	}

	if meta.IsDefined("scenarios") {
		cfg.Scenarios = normalizeScenarios(raw.Scenarios)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}

	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := config.ValidateDemoConfig(cfg); err != nil {
		return config.DemoConfig{}, err
	}
	return cfg, nil
}

func normalizeScenarios(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		v := strings.TrimSpace(s)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
