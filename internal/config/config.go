// Package config loads and validates mixedmd YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/goccy/go-yaml"

	"github.com/alnah/go-mixedmd/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrInvalidRule     = errors.New("invalid post-process rule")
)

// MaxInputSize limits config file size to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

// Limits for user-provided values.
const (
	MaxWorkers        = 32
	MaxRules          = 64
	MaxDirLength      = 4096 // PATH_MAX on Linux
	MaxSelectorLength = 256
	MaxAttrLength     = 64
	MaxValueLength    = 500
)

// Config holds all configuration for conversion.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Workers     int               `yaml:"workers"` // 0 = auto from GOMAXPROCS
	PostProcess PostProcessConfig `yaml:"postProcess"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = stdin)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PostProcessConfig controls the attribute rewrite pass.
type PostProcessConfig struct {
	Disabled bool         `yaml:"disabled"`
	Rules    []RuleConfig `yaml:"rules"` // Empty = built-in h2 subtitle rule
}

// RuleConfig sets Attr to Value on every element matching Selector.
type RuleConfig struct {
	Selector string `yaml:"selector"`
	Attr     string `yaml:"attr"`
	Value    string `yaml:"value"`
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	if len(c.PostProcess.Rules) > MaxRules {
		return fmt.Errorf("%w: %d rules (max %d)", ErrInvalidRule, len(c.PostProcess.Rules), MaxRules)
	}
	for i, r := range c.PostProcess.Rules {
		if err := r.validate(); err != nil {
			return fmt.Errorf("postProcess.rules[%d]: %w", i, err)
		}
	}

	return nil
}

func (r RuleConfig) validate() error {
	if err := validateFieldLength("selector", r.Selector, MaxSelectorLength); err != nil {
		return err
	}
	if err := validateFieldLength("attr", r.Attr, MaxAttrLength); err != nil {
		return err
	}
	if err := validateFieldLength("value", r.Value, MaxValueLength); err != nil {
		return err
	}

	if strings.TrimSpace(r.Selector) == "" {
		return fmt.Errorf("%w: selector is required", ErrInvalidRule)
	}
	if strings.TrimSpace(r.Attr) == "" {
		return fmt.Errorf("%w: attr is required", ErrInvalidRule)
	}
	if strings.ContainsAny(r.Attr, " \t\n\"'>/=") {
		return fmt.Errorf("%w: attr %q contains invalid characters", ErrInvalidRule, r.Attr)
	}
	if _, err := cascadia.Compile(r.Selector); err != nil {
		return fmt.Errorf("%w: selector %q: %v", ErrInvalidRule, r.Selector, err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// stdin input, output next to the source, automatic workers and the
// built-in post-process rule.
func DefaultConfig() *Config {
	return &Config{
		Input:       InputConfig{DefaultDir: ""},
		Output:      OutputConfig{DefaultDir: ""},
		Workers:     0,
		PostProcess: PostProcessConfig{Disabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty config", ErrConfigParse)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxInputSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mixedmd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mixedmd", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
