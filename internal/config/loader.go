package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "meteor.yaml"

// LoadMeteor loads the meteor configuration.
// Search order: customPath -> ~/.meteorfall/configs/meteor.yaml -> ./configs/meteor.yaml -> embedded default
func LoadMeteor(customPath string) (MeteorConfig, error) {
	var cfg MeteorConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMeteorYAML, &cfg); err != nil {
		return DefaultMeteorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the file LoadMeteor would read for customPath, or "" for the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := UserConfigPath(ConfigFile); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	local := filepath.Join("configs", ConfigFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// withDefaults fills variants missing from a user file with the built-in ones.
func withDefaults(cfg MeteorConfig) MeteorConfig {
	if cfg.Variants == nil {
		cfg.Variants = make(map[string]Variant)
	}
	for id, v := range DefaultMeteorConfig().Variants {
		if _, ok := cfg.Variants[id]; !ok {
			cfg.Variants[id] = v
		}
	}
	return cfg
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meteorfall", "configs", filename)
}
