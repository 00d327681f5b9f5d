// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "thresholds.single_candidate").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned when getting/setting an unknown config key.
var ErrUnknownKey = errors.New("unknown config key")

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"replace_all", "auto_confirm", "log_path",
		"thresholds.single_candidate", "thresholds.multi_candidate",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "replace_all":
		return strconv.FormatBool(c.DefaultReplaceAll()), nil
	case "auto_confirm":
		return strconv.FormatBool(c.AutoConfirmEnabled()), nil
	case "log_path":
		return c.LogPath, nil
	case "thresholds.single_candidate":
		return strconv.FormatFloat(c.SingleCandidateThreshold(), 'f', -1, 64), nil
	case "thresholds.multi_candidate":
		return strconv.FormatFloat(c.MultiCandidateThreshold(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "replace_all":
		b, err := parseBool(value, "replace_all")
		if err != nil {
			return err
		}
		c.ReplaceAll = &b
	case "auto_confirm":
		b, err := parseBool(value, "auto_confirm")
		if err != nil {
			return err
		}
		c.AutoConfirm = &b
	case "log_path":
		c.LogPath = value
	case "thresholds.single_candidate":
		f, err := parseUnitFloat(value, "thresholds.single_candidate")
		if err != nil {
			return err
		}
		c.Thresholds.SingleCandidate = &f
	case "thresholds.multi_candidate":
		f, err := parseUnitFloat(value, "thresholds.multi_candidate")
		if err != nil {
			return err
		}
		c.Thresholds.MultiCandidate = &f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(value, key string) (bool, error) {
	v := strings.ToLower(value)
	if v != "true" && v != "false" {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	return v == "true", nil
}

func parseUnitFloat(value, key string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, fmt.Errorf("%w: %s must be a number in [0,1]", ErrInvalidValue, key)
	}
	return f, nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"replace_all":                 strconv.FormatBool(c.DefaultReplaceAll()),
		"auto_confirm":                strconv.FormatBool(c.AutoConfirmEnabled()),
		"log_path":                    c.LogPath,
		"thresholds.single_candidate": strconv.FormatFloat(c.SingleCandidateThreshold(), 'f', -1, 64),
		"thresholds.multi_candidate":  strconv.FormatFloat(c.MultiCandidateThreshold(), 'f', -1, 64),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "replace_all":
		return c.ReplaceAll != nil
	case "auto_confirm":
		return c.AutoConfirm != nil
	case "log_path":
		return c.LogPath != ""
	case "thresholds.single_candidate":
		return c.Thresholds.SingleCandidate != nil
	case "thresholds.multi_candidate":
		return c.Thresholds.MultiCandidate != nil
	default:
		return false
	}
}
