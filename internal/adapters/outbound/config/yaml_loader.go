package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dialoglint/dialoglint/internal/domain"
)

const fileName = ".dialoglint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .dialoglint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dialoglint.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.LintConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.LintConfig{}, err
	}

	var cfg domain.LintConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.LintConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before use to catch typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.LintConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
