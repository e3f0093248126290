package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config carries defaults for the CLI. Every field is optional; flags
// override whatever the file provides.
type Config struct {
	LogLevel    string `yaml:"log-level"`
	BenchCount  int    `yaml:"bench-count"`
	HistoryFile string `yaml:"history-file"`
}

// LoadConfig reads a yaml config file. An empty path yields the zero
// config (all defaults).
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
