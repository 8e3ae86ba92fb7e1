// Package config handles wisp.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents a wisp.toml runtime configuration.
type Config struct {
	VM       VMConfig       `toml:"vm"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Log      LogConfig      `toml:"log"`

	// Dir is the directory containing the wisp.toml file (set at load time).
	Dir string `toml:"-"`
}

// VMConfig tunes the virtual machine runtime.
type VMConfig struct {
	TraceAllocs bool `toml:"trace-allocs"`
}

// SnapshotConfig configures heap snapshot output.
type SnapshotConfig struct {
	Output string `toml:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Verbosity int `toml:"verbosity"`
}

// Default returns the configuration used when no wisp.toml exists.
func Default() *Config {
	return &Config{}
}

// Load parses a wisp.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "wisp.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if c.Log.Verbosity < 0 {
		return nil, fmt.Errorf("invalid log verbosity %d in %s", c.Log.Verbosity, path)
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a wisp.toml file, then
// loads and returns the configuration. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "wisp.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// SnapshotPath returns the absolute path for snapshot output, or ""
// when no output is configured.
func (c *Config) SnapshotPath() string {
	if c.Snapshot.Output == "" {
		return ""
	}
	if filepath.IsAbs(c.Snapshot.Output) || c.Dir == "" {
		return c.Snapshot.Output
	}
	return filepath.Join(c.Dir, c.Snapshot.Output)
}
