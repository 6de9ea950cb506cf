package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"handoff/internal/handoff"
	"handoff/internal/logging"
)

var banner = color.New(color.FgCyan, color.Bold)

func main() {
	configPath := flag.String("config", "", "optional TOML config path")
	payload := flag.String("payload", "", "payload override")
	scenario := flag.String("scenario", "", "run a single scenario: honest|claiming")
	flag.Parse()

	cfg, err := loadDemoConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "handoff: %v\n", err)
		os.Exit(1)
	}
	if *payload != "" {
		cfg.Payload = *payload
	}
	if *scenario != "" {
		cfg.Scenarios = []string{*scenario}
	}

	scenarios := make([]handoff.Scenario, 0, len(cfg.Scenarios))
	for _, raw := range cfg.Scenarios {
		s, err := handoff.ParseScenario(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "handoff: %v\n", err)
			os.Exit(1)
		}
		scenarios = append(scenarios, s)
	}

	// ParseLevel falls back to info for an empty value.
	lvl, ok := logging.ParseLevel(cfg.Log.Level)
	if !ok && strings.TrimSpace(cfg.Log.Level) != "" {
		fmt.Fprintf(os.Stderr, "handoff: unknown log level %q\n", cfg.Log.Level)
		os.Exit(1)
	}
	logging.ConfigureWith(logging.Config{
		Level:     lvl,
		Timestamp: cfg.Log.Timestamp,
		NoColor:   cfg.Log.NoColor,
	})
	if cfg.Log.NoColor {
		color.NoColor = true
	}

	demo := handoff.NewDemo(cfg.Payload)
	for i, s := range scenarios {
		banner.Printf("=== run %d: %s relay ===\n", i+1, s)
		if err := demo.Run(s); err != nil {
			fmt.Fprintf(os.Stderr, "handoff: %v\n", err)
			os.Exit(1)
		}
	}

	banner.Println("=== transcript ===")
	for _, ev := range demo.Journal().Events() {
		fmt.Printf("resource %d: %s\n", ev.ResourceID, ev.Kind)
	}
}
