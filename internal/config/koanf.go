// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file path looked up by
// LoadWithKoanf.
const ConfigPathEnvVar = "LANGGATE_CONFIG_PATH"

// DefaultConfigPaths lists the paths searched for a config file, in
// order of priority, when ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"langgate.toml",
	"/etc/langgate/langgate.toml",
}

func defaultConfig() *Config {
	return &Config{
		Addr:              "0.0.0.0:8080",
		DataFileDir:       defaultDataFileDir(),
		WatcherIntervalMs: 1000,
		LogLevel:          "info",
		LogFormat:         "json",
	}
}

// LoadWithKoanf loads configuration with three layered sources, in
// increasing order of precedence:
//  1. Built-in defaults
//  2. An optional TOML config file
//  3. Environment variables prefixed LANGGATE_
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading default configuration: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps LANGGATE_-prefixed environment variables to
// koanf paths, e.g. LANGGATE_DATA_FILE_DIR -> data_file_dir. Variables
// without the prefix are skipped, returning "" to opt them out.
func envTransformFunc(key string) string {
	if !strings.HasPrefix(key, "LANGGATE_") {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(key, "LANGGATE_"))
}

// WatchConfigFile sets up a file watcher for hot-reload. The callback
// runs whenever the underlying file changes; it is up to the caller to
// reload and swap configuration under its own lock.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
