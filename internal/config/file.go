package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays the YAML file at path onto base. Keys absent from the file keep
// their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.DefaultPageSize = pageSizeOrDefault(cfg.DefaultPageSize)
	return cfg, nil
}
