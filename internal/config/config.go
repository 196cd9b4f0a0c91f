// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Port    int    `json:"port,omitempty"`    // HTTP port for serve
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Engine  string `json:"engine,omitempty"`  // "heuristic" or "llm"
	Verbose bool   `json:"verbose,omitempty"` // Print boxed summaries instead of raw JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Engine != "" && c.Engine != types.EngineHeuristic && c.Engine != types.EngineLLM {
		return fmt.Errorf("config error: 'engine' must be %q or %q", types.EngineHeuristic, types.EngineLLM)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags always win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Engine == "" {
		if defaults.Engine != "" {
			result.Engine = defaults.Engine
		} else {
			result.Engine = types.EngineHeuristic
		}
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge.

	return result
}
