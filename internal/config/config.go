// Package config provides unified configuration for the Forkpath server.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (FORKPATH_ prefix)
//  4. Validation
package config

import "time"

// Config holds all configuration for the forkpath server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Graph   GraphConfig   `yaml:"graph"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `yaml:"port"`          // default: 8080
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"` // default: 30s
}

// GraphConfig selects the question tree to serve.
type GraphConfig struct {
	// Path points at a YAML graph document. Empty serves the built-in menu.
	Path string `yaml:"path"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error, default: "info"
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
