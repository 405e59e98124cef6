package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trail/pkg/config"
)

// dbFileName is the state database file inside the trail state directory.
const dbFileName = "trail.sqlite3"

// stateDBPath returns the path of the state database, creating its directory
// on demand. Resolution order:
//   - TRAIL_DB_PATH: the full database path
//   - TRAIL_STATE_DIR: directory holding trail.sqlite3
//   - state_dir from the global config file
//   - $XDG_STATE_HOME/trail
//   - ~/.local/state/trail
func stateDBPath(cfg config.Config) (string, error) {
	if v := os.Getenv("TRAIL_DB_PATH"); v != "" {
		if err := os.MkdirAll(filepath.Dir(v), 0o755); err != nil {
			return "", fmt.Errorf("create state dir: %w", err)
		}
		return v, nil
	}

	dir := os.Getenv("TRAIL_STATE_DIR")
	if dir == "" {
		dir = cfg.StateDir
	}
	if dir == "" {
		if x := os.Getenv("XDG_STATE_HOME"); x != "" {
			dir = filepath.Join(x, "trail")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("get home dir: %w", err)
			}
			dir = filepath.Join(home, ".local", "state", "trail")
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return filepath.Join(dir, dbFileName), nil
}

// userConfigPath returns the global config file path: TRAIL_CONFIG if set,
// else <user-config-dir>/trail/config.toml.
func userConfigPath() (string, error) {
	if v := os.Getenv("TRAIL_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "trail", config.FileName), nil
}
