package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacket loads the racket configuration.
// Search order: customPath -> ~/.arcade/configs/racket.yaml -> ./configs/racket.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated. A missing search-path file is
// skipped; one that exists but cannot be used is an error.
func LoadRacket(customPath string) (RacketConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacketConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("racket.yaml"), filepath.Join("configs", "racket.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return RacketConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parseFile(path, data)
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRacketYAML)
	if err != nil {
		return DefaultRacketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseFile(path string, data []byte) (RacketConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return RacketConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RacketConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RacketConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// decode unmarshals YAML over the hard-coded defaults.
func decode(data []byte) (RacketConfig, error) {
	cfg := DefaultRacketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacketConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
