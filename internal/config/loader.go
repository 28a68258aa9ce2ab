package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "doodle.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadDoodle loads the engine configuration.
// Search order: customPath -> ~/.doodle/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default.
// Only an explicit customPath can fail; broken files elsewhere are skipped.
func LoadDoodle(customPath string) (DoodleConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", configFileName)); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDoodleYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultDoodleConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the built-in defaults so partial files only
// override the keys they mention.
func parse(data []byte) (DoodleConfig, error) {
	cfg := DefaultDoodleConfig()
	cfg.Difficulty.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DoodleConfig{}, err
	}
	if cfg.Difficulty.Tiers == nil {
		cfg.Difficulty.Tiers = DefaultTiers()
	}
	return cfg, nil
}

func tryFile(path string) (DoodleConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DoodleConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return DoodleConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doodle", "configs", filename)
}
