// Package config provides the TOML configuration file and XDG path
// helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/mathsprint/internal/adaptive"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session   SessionConfig   `toml:"session"`
	Adaptive  AdaptiveConfig  `toml:"adaptive"`
	WeakAreas WeakAreasConfig `toml:"weakareas"`
}

// SessionConfig maps session defaults for the play command.
type SessionConfig struct {
	Mode          *string `toml:"mode"`
	Category      *string `toml:"category"`
	Difficulty    *string `toml:"difficulty"`
	SprintSeconds *int    `toml:"sprint-seconds"`
	QuestionCount *int    `toml:"question-count"`
}

// AdaptiveConfig maps difficulty-adjuster tunables.
type AdaptiveConfig struct {
	WindowSize       *int     `toml:"window-size"`
	StepUpAccuracy   *float64 `toml:"step-up-accuracy"`
	StepUpAvgTime    *float64 `toml:"step-up-avg-time"`
	StepDownAccuracy *float64 `toml:"step-down-accuracy"`
}

// WeakAreasConfig maps targeted-mode settings.
type WeakAreasConfig struct {
	Threshold *float64 `toml:"threshold"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Tunables merges the adaptive section over the built-in defaults.
func (c FileConfig) Tunables() adaptive.Tunables {
	t := adaptive.DefaultTunables()
	if v := c.Adaptive.WindowSize; v != nil && *v > 0 {
		t.WindowSize = *v
	}
	if v := c.Adaptive.StepUpAccuracy; v != nil {
		t.StepUpAccuracy = *v
	}
	if v := c.Adaptive.StepUpAvgTime; v != nil {
		t.StepUpAvgTime = *v
	}
	if v := c.Adaptive.StepDownAccuracy; v != nil {
		t.StepDownAccuracy = *v
	}
	return t
}

// WeakAreaThreshold returns the configured targeted-mode accuracy
// threshold, or fallback when unset.
func (c FileConfig) WeakAreaThreshold(fallback float64) float64 {
	if v := c.WeakAreas.Threshold; v != nil && *v > 0 && *v <= 1 {
		return *v
	}
	return fallback
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "mathsprint", "config.toml")
}
