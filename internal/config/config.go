// Package config provides reading and writing of fuzzyedit configuration.
// Supports both global (~/.fuzzyedit/config.yaml) and local
// (.fuzzyedit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: Save writes back to the file the config was loaded from; the
// config command's --local flag loads, and so writes, the local file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.fuzzyedit/config.yaml (default).
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .fuzzyedit/config.yaml.
	ScopeLocal
)

// Thresholds holds the block-anchor replacer's acceptance thresholds,
// exposed for experimentation; defaults to the engine's 0.3/0.5.
type Thresholds struct {
	SingleCandidate *float64 `yaml:"single_candidate,omitempty"`
	MultiCandidate  *float64 `yaml:"multi_candidate,omitempty"`
}

// Default thresholds applied when not configured.
const (
	DefaultSingleCandidateThreshold = 0.3
	DefaultMultiCandidateThreshold  = 0.5
)

// Config contains configuration for fuzzyedit.
type Config struct {
	// ReplaceAll sets the default for the --all flag when not given explicitly.
	ReplaceAll *bool `yaml:"replace_all,omitempty"`
	// AutoConfirm bypasses the interactive y/n prompt, applying edits
	// unconditionally. Also settable via FUZZYEDIT_AUTO_CONFIRM.
	AutoConfirm *bool      `yaml:"auto_confirm,omitempty"`
	LogPath     string     `yaml:"log_path,omitempty"`
	Thresholds  Thresholds `yaml:"thresholds,omitempty"`

	// path is the file this config was loaded from (for Save).
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if v := c.Thresholds.SingleCandidate; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%w: thresholds.single_candidate must be in [0,1], got %v", ErrInvalidValue, *v)
	}
	if v := c.Thresholds.MultiCandidate; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%w: thresholds.multi_candidate must be in [0,1], got %v", ErrInvalidValue, *v)
	}
	return nil
}

// DefaultReplaceAll reports whether replaceAll defaults to true (defaults
// to false when unset).
func (c *Config) DefaultReplaceAll() bool {
	if c.ReplaceAll == nil {
		return false
	}
	return *c.ReplaceAll
}

// AutoConfirmEnabled reports whether confirmation prompts should be
// bypassed. FUZZYEDIT_AUTO_CONFIRM overrides the config file when set to
// "1" or "true".
func (c *Config) AutoConfirmEnabled() bool {
	switch os.Getenv("FUZZYEDIT_AUTO_CONFIRM") {
	case "1", "true":
		return true
	}
	if c.AutoConfirm == nil {
		return false
	}
	return *c.AutoConfirm
}

// SingleCandidateThreshold returns the block-anchor single-candidate
// acceptance threshold (defaults to 0.3).
func (c *Config) SingleCandidateThreshold() float64 {
	if c.Thresholds.SingleCandidate == nil {
		return DefaultSingleCandidateThreshold
	}
	return *c.Thresholds.SingleCandidate
}

// MultiCandidateThreshold returns the block-anchor multi-candidate
// acceptance threshold (defaults to 0.5).
func (c *Config) MultiCandidateThreshold() float64 {
	if c.Thresholds.MultiCandidate == nil {
		return DefaultMultiCandidateThreshold
	}
	return *c.Thresholds.MultiCandidate
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".fuzzyedit", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.fuzzyedit/config.yaml.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fuzzyedit", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
