package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/barr.yaml
var defaultYAML []byte

// Load reads the game configuration.
// Search order: customPath -> ~/.barr/config.yaml -> ./configs/barr.yaml -> embedded default.
// Keys missing from a file keep their Default value.
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "barr.yaml")); err == nil {
		return parse(data, "configs/barr.yaml")
	}

	return parse(defaultYAML, "embedded default")
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	return parse(data, "config")
}

func parse(data []byte, origin string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", origin, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", origin, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".barr", filename)
}
