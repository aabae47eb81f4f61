// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
}

// GenerateConfig maps generation settings. Nil means unset.
type GenerateConfig struct {
	Num        *int    `toml:"num"`
	MinLength  *int    `toml:"min"`
	MaxLength  *int    `toml:"max"`
	ValidChars *string `toml:"valid-chars"`
	Verbose    *bool   `toml:"verbose"`
	Adjectives *string `toml:"adjectives"`
	Nouns      *string `toml:"nouns"`
	Verbs      *string `toml:"verbs"`
}

// WordFile returns the configured word list path for role.
func (g GenerateConfig) WordFile(role model.Role) *string {
	switch role {
	case model.Adjectives:
		return g.Adjectives
	case model.Nouns:
		return g.Nouns
	case model.Verbs:
		return g.Verbs
	default:
		return nil
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("%w: failed to decode config: %v", model.ErrInvalidConfiguration, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("%w: unknown config key %q in %s", model.ErrInvalidConfiguration, undecoded[0].String(), path)
	}
	return cfg, nil
}
