// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format             string `yaml:"format"`
		Output             string `yaml:"output"`
		Verbose            bool   `yaml:"verbose"`
		Debug              bool   `yaml:"debug"`
		NoColor            bool   `yaml:"no_color"`
		Offline            bool   `yaml:"offline"`
		SettleDelaySeconds int    `yaml:"settle_delay_seconds"`
	} `yaml:"defaults"`

	// Profiles for different extraction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an extraction profile with specific settings
type Profile struct {
	Format             string `yaml:"format"`
	Output             string `yaml:"output"`
	Verbose            bool   `yaml:"verbose"`
	Debug              bool   `yaml:"debug"`
	NoColor            bool   `yaml:"no_color"`
	Offline            bool   `yaml:"offline"`
	SettleDelaySeconds int    `yaml:"settle_delay_seconds"`
	Description        string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.SettleDelaySeconds = 2

	// Default batch profile: machine-readable output, no colors, quiet
	config.Profiles["batch"] = Profile{
		Format:             "json",
		NoColor:            true,
		SettleDelaySeconds: 2,
		Description:        "Optimized for scripted use with structured output",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.SettleDelaySeconds <= 0 {
		config.Defaults.SettleDelaySeconds = 2
	}

	return config, nil
}

// LoadConfigOrDefault loads the configuration file, falling back to defaults
// on any error
func LoadConfigOrDefault(configPath string) *Config {
	path := configPath
	if path == "" {
		path = FindConfigFile()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// GetProfile retrieves a named profile from the configuration
func (c *Config) GetProfile(name string) (*Profile, error) {
	if name == "" {
		return nil, nil
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found in configuration", name)
	}
	return &profile, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	for _, name := range []string{"swmeta.yaml", "swmeta.yml", ".swmeta.yaml", ".swmeta.yml"} {
		if fileExists(name) {
			return name
		}
	}

	if runtime.GOOS == "windows" {
		return findWindowsConfigFile()
	}
	return findUnixConfigFile()
}

// findWindowsConfigFile looks for configuration files in Windows-specific locations
func findWindowsConfigFile() string {
	// APPDATA directory (recommended Windows location)
	if appData := os.Getenv("APPDATA"); appData != "" {
		for _, name := range []string{"config.yaml", "config.yml"} {
			configFile := filepath.Join(appData, "swmeta", name)
			if fileExists(configFile) {
				return configFile
			}
		}
	}

	// USERPROFILE directory (fallback)
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		for _, name := range []string{"config.yaml", "config.yml"} {
			configFile := filepath.Join(userProfile, ".swmeta", name)
			if fileExists(configFile) {
				return configFile
			}
		}
	}

	return ""
}

// findUnixConfigFile looks for configuration files in Unix-specific locations
func findUnixConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		configFile := filepath.Join(xdgConfig, "swmeta", name)
		if fileExists(configFile) {
			return configFile
		}
	}

	return ""
}

// fileExists checks whether path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
