// Package config loads trail's optional configuration: a global TOML file
// under the user config directory plus a per-repository .trail.yaml overlay
// at the repository root. Missing files are fine; malformed files are errors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the global config file, relative to <user-config-dir>/trail/.
const FileName = "config.toml"

// OverlayName is the per-repository overlay, relative to the repository root.
const OverlayName = ".trail.yaml"

// Config is the merged trail configuration.
type Config struct {
	// HalfLifeDays tunes the frecency decay. Zero means the built-in default.
	HalfLifeDays float64 `toml:"half_life_days"`

	// StateDir overrides where the state database lives.
	StateDir string `toml:"state_dir"`

	Record Record `toml:"record"`
	Watch  Watch  `toml:"watch"`
}

// Record configures the record command.
type Record struct {
	// AllowOutside records paths outside the resolved repository instead of
	// skipping them.
	AllowOutside bool `toml:"allow_outside"`
}

// Watch configures the watch command.
type Watch struct {
	// DebounceMS is the quiet period before a changed path is recorded.
	DebounceMS int `toml:"debounce_ms"`

	// Ignore lists glob patterns (matched against repo-relative paths) that
	// watch never records. .git/ is always ignored.
	Ignore []string `toml:"ignore"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Watch: Watch{DebounceMS: 500},
	}
}

// Load reads the global config file at path, returning Default() when the
// file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse %s: %w", path, err)
	}
	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = Default().Watch.DebounceMS
	}
	return cfg, nil
}

// overlay is the subset of Config a repository may override.
type overlay struct {
	Record struct {
		AllowOutside *bool `yaml:"allow_outside"`
	} `yaml:"record"`
	Watch struct {
		Ignore []string `yaml:"ignore"`
	} `yaml:"watch"`
}

// ApplyRepoOverlay merges .trail.yaml from repoRoot into cfg. Overlay ignore
// patterns append to the global list; allow_outside replaces the global value
// when set.
func ApplyRepoOverlay(cfg Config, repoRoot string) (Config, error) {
	path := filepath.Join(repoRoot, OverlayName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config read %s: %w", path, err)
	}

	var ov overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return cfg, fmt.Errorf("config parse %s: %w", path, err)
	}

	if ov.Record.AllowOutside != nil {
		cfg.Record.AllowOutside = *ov.Record.AllowOutside
	}
	cfg.Watch.Ignore = append(cfg.Watch.Ignore, ov.Watch.Ignore...)
	return cfg, nil
}
