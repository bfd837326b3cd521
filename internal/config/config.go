// Package config provides configuration management for the CLI harness:
// the ROM and log directories, breakpoints, an initial PC override, an
// instruction budget, and logging verbosity. It follows the teacher's JSON-file config
// pattern, trimmed to the sections this interpreter actually has.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all CLI/debugger configuration.
type Config struct {
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
	Paths     PathsConfig     `json:"paths"`

	configPath string
	loaded     bool
}

// EmulationConfig controls how a loaded ROM is run.
type EmulationConfig struct {
	InitialPC      *uint16 `json:"initial_pc,omitempty"` // overrides the reset vector when set
	MaxInstructions uint64 `json:"max_instructions"`     // 0 means unbounded
}

// DebugConfig controls debugger behavior and logging.
type DebugConfig struct {
	Breakpoints []uint16 `json:"breakpoints"`
	LogLevel    string   `json:"log_level"` // "DEBUG", "INFO", "WARN", "ERROR"
	Interactive bool     `json:"interactive"`
}

// PathsConfig contains file and directory paths.
type PathsConfig struct {
	ROMs string `json:"roms"`
	Logs string `json:"logs"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Emulation: EmulationConfig{MaxInstructions: 0},
		Debug: DebugConfig{
			LogLevel:    "INFO",
			Interactive: false,
		},
		Paths: PathsConfig{
			ROMs: "./roms",
			Logs: "./logs",
		},
	}
}

// LoadFromFile loads configuration from a JSON file, writing out the
// default configuration if the file does not yet exist.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	c.validate()
	c.loaded = true
	return nil
}

// SaveToFile writes the configuration to path as indented JSON.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	c.configPath = path
	return nil
}

func (c *Config) validate() {
	switch c.Debug.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		c.Debug.LogLevel = "INFO"
	}
}

// IsLoaded reports whether the configuration was loaded from a file.
func (c *Config) IsLoaded() bool { return c.loaded }

// GetConfigPath returns the path the configuration was loaded from or
// last saved to.
func (c *Config) GetConfigPath() string { return c.configPath }

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string { return "./config/nes6502.json" }
