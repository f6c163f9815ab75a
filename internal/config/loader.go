package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, FORKPATH_CONFIG env, ./forkpath.yaml)
//  3. Environment variable overrides
//  4. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// explicit argument, FORKPATH_CONFIG, ./forkpath.yaml.
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if p := os.Getenv("FORKPATH_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("forkpath.yaml"); err == nil {
		return "forkpath.yaml"
	}
	return ""
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps FORKPATH_* environment variables onto the config.
// Invalid values are ignored in favor of the configured/default value.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FORKPATH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FORKPATH_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("FORKPATH_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if v := os.Getenv("FORKPATH_GRAPH"); v != "" {
		cfg.Graph.Path = v
	}
	if v := os.Getenv("FORKPATH_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("FORKPATH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
