// Package config loads optional user defaults for textalign.
//
// Defaults are read from a TOML file at the XDG config location
// (~/.config/textalign/config.toml):
//
//	width = 72
//	align = "justify"
//
// A missing file is not an error: the built-in defaults apply. Command-line
// flags always override file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/robenli/textalign/pkg/align"
	"github.com/robenli/textalign/pkg/errors"
)

// Built-in defaults applied when neither a config file nor a flag sets
// a value.
const (
	DefaultWidth = 80
	DefaultAlign = "left"
)

// Config holds user-configurable defaults for formatting.
type Config struct {
	Width int    `toml:"width"`
	Align string `toml:"align"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Width: DefaultWidth, Align: DefaultAlign}
}

// Path returns the config file location using the XDG convention
// (~/.config/textalign/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "textalign", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textalign", "config.toml"), nil
}

// Load reads the config file at path, applying file values over the
// built-in defaults. A missing file returns the defaults without error;
// an unreadable, unparsable, or invalid file is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidWidth, "width must be positive, got %d", c.Width)
	}
	if _, err := align.ParseMode(c.Align); err != nil {
		return err
	}
	return nil
}
