package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"handoff/internal/handoff"
)

// DemoConfig drives the demonstration binary: what payload to hand off and
// which scenarios to run, in order.
type DemoConfig struct {
	Payload   string    `toml:"payload"`
	Scenarios []string  `toml:"scenarios"`
	Log       LogConfig `toml:"log"`
}

// LogConfig mirrors the HANDOFF_LOG_* env knobs for file-based setups.
type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

// DefaultDemoConfig matches the original demonstration: both scenarios,
// honest relay first.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Payload:   "Hello, World!",
		Scenarios: []string{string(handoff.ScenarioHonest), string(handoff.ScenarioClaiming)},
		Log:       LogConfig{Level: "info", Timestamp: true},
	}
}

// LoadDemoConfig reads and validates a demo config, filling defaults for
// absent fields.
func LoadDemoConfig(path string) (DemoConfig, error) {
	var cfg DemoConfig
	if err := loadToml(path, &cfg); err != nil {
		return DemoConfig{}, err
	}
	defaults := DefaultDemoConfig()
	if strings.TrimSpace(cfg.Payload) == "" {
		cfg.Payload = defaults.Payload
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = defaults.Scenarios
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if err := ValidateDemoConfig(cfg); err != nil {
		return DemoConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateDemoConfig rejects empty payloads and unknown scenario names.
func ValidateDemoConfig(cfg DemoConfig) error {
	if strings.TrimSpace(cfg.Payload) == "" {
		return fmt.Errorf("demo config missing payload")
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("demo config missing scenarios")
	}
	for i, raw := range cfg.Scenarios {
		if _, err := handoff.ParseScenario(raw); err != nil {
			return fmt.Errorf("scenario[%d] invalid: %w", i, err)
		}
	}
	return nil
}
