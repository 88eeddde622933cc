package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/harrison/genmake/internal/classify"
	"github.com/harrison/genmake/internal/expand"
	"github.com/harrison/genmake/internal/generator"
)

// FileName is the per-project configuration file.
const FileName = ".gen-make.yaml"

// CPUEnv overrides the configured CPU.
const CPUEnv = "CPU"

// HistoryConfig controls the generation history database.
type HistoryConfig struct {
	// Enabled records every generation run
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite file; empty means history.db in the home directory
	DBPath string `yaml:"db_path"`
}

// Config represents gen-make configuration options
type Config struct {
	// Generator is used when the command line names none
	Generator string `yaml:"generator"`

	// Recursive descends into subdirectories while scanning
	Recursive bool `yaml:"recursive"`

	// CPU selects bitness and resource target (x86, x64)
	CPU string `yaml:"cpu"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory
	LogDir string `yaml:"log_dir"`

	// FormatTool is the executable probed by %a
	FormatTool string `yaml:"format_tool"`

	// WriteLibRule keeps the library rule in generators that gate it
	WriteLibRule bool `yaml:"write_lib_rule"`

	// VCSDirs are directories never scanned for sources
	VCSDirs []string `yaml:"vcs_dirs"`

	// ExcludeRC is a resource script that is never listed
	ExcludeRC string `yaml:"exclude_rc"`

	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Recursive:    true,
		CPU:          expand.DefaultCPU,
		LogLevel:     "info",
		FormatTool:   expand.DefaultFormatter,
		WriteLibRule: true,
		VCSDirs:      append([]string(nil), classify.DefaultVCSDirs...),
		ExcludeRC:    classify.DefaultExcludeRC,
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers tell an explicit false apart from an absent key
	type yamlHistory struct {
		Enabled *bool   `yaml:"enabled"`
		DBPath  *string `yaml:"db_path"`
	}
	type yamlConfig struct {
		Generator    string       `yaml:"generator"`
		Recursive    *bool        `yaml:"recursive"`
		CPU          string       `yaml:"cpu"`
		LogLevel     string       `yaml:"log_level"`
		LogDir       string       `yaml:"log_dir"`
		FormatTool   string       `yaml:"format_tool"`
		WriteLibRule *bool        `yaml:"write_lib_rule"`
		VCSDirs      []string     `yaml:"vcs_dirs"`
		ExcludeRC    *string      `yaml:"exclude_rc"`
		History      *yamlHistory `yaml:"history"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if yamlCfg.Generator != "" {
		cfg.Generator = yamlCfg.Generator
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}
	if yamlCfg.CPU != "" {
		cfg.CPU = yamlCfg.CPU
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.FormatTool != "" {
		cfg.FormatTool = yamlCfg.FormatTool
	}
	if yamlCfg.WriteLibRule != nil {
		cfg.WriteLibRule = *yamlCfg.WriteLibRule
	}
	if yamlCfg.VCSDirs != nil {
		cfg.VCSDirs = yamlCfg.VCSDirs
	}
	if yamlCfg.ExcludeRC != nil {
		cfg.ExcludeRC = *yamlCfg.ExcludeRC
	}
	if h := yamlCfg.History; h != nil {
		if h.Enabled != nil {
			cfg.History.Enabled = *h.Enabled
		}
		if h.DBPath != nil {
			cfg.History.DBPath = *h.DBPath
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .gen-make.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// LoadDotEnv loads dir/.env into the process environment. Variables that
// are already set keep their value. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv(getenv func(string) string) {
	if cpu := strings.TrimSpace(getenv(CPUEnv)); cpu != "" {
		c.CPU = cpu
	}
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(gen *string, recursive *bool, cpu *string, logLevel *string, logDir *string, writeLibRule *bool, history *bool) {
	if gen != nil {
		c.Generator = *gen
	}
	if recursive != nil {
		c.Recursive = *recursive
	}
	if cpu != nil {
		c.CPU = *cpu
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if writeLibRule != nil {
		c.WriteLibRule = *writeLibRule
	}
	if history != nil {
		c.History.Enabled = *history
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Generator != "" {
		if _, err := generator.Lookup(c.Generator); err != nil {
			return fmt.Errorf("invalid generator: %w", err)
		}
	}

	for _, dir := range c.VCSDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("invalid vcs_dirs entry %q, must be a plain directory name", dir)
		}
	}

	if strings.ContainsAny(c.ExcludeRC, `/\`) {
		return fmt.Errorf("exclude_rc must be a file name, got %q", c.ExcludeRC)
	}

	return nil
}
