package regdump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Config holds the settings read from regdump.yaml.
type Config struct {
	DB     string `json:"db,omitempty"`
	Output string `json:"output,omitempty"`
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "regdump")
}

// DefaultConfigPath returns the location of regdump.yaml in the user's
// configuration directory.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "regdump.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		DB:     filepath.Join(configDir(), "snapshots.db"),
		Output: "text",
	}
}

// LoadConfig reads the configuration file at path. Settings missing from the
// file, or a missing file, leave the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case "text", "yaml":
		return nil
	}
	return fmt.Errorf("invalid output format %q", c.Output)
}
