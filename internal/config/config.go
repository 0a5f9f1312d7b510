package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/scribe/internal/renderer/core"
)

// Log levels accepted in [log].level.
var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Config holds all editor settings.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Theme ThemeConfig `toml:"theme"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level"`
	// File receives log output. Empty discards it; the terminal is
	// owned by the editor while it runs.
	File string `toml:"file"`
}

// ThemeConfig holds foreground colors as hex strings.
// An empty string keeps the terminal's default color.
type ThemeConfig struct {
	Border string `toml:"border"`
	Text   string `toml:"text"`
	Status string `toml:"status"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Border: "#5f87af",
			Status: "#87af87",
		},
	}
}

// Load reads the configuration at path. An empty path or a file that does
// not exist yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes TOML data on top of Default. Values are not validated;
// callers apply their overrides and then call Validate.
// source names the data in error messages.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(source, err)
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{
		Path:    source,
		Message: err.Error(),
		Err:     err,
	}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decodeErr):
		pe.Line, pe.Column = decodeErr.Position()
	case errors.As(err, &strictErr):
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		pe.Message = "unknown setting " + strings.Join(keys, ", ")
		if len(strictErr.Errors) > 0 {
			pe.Line, pe.Column = strictErr.Errors[0].Position()
		}
	}
	return pe
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return &ValidationError{
			Path:    "log.level",
			Value:   c.Log.Level,
			Message: "must be one of debug, info, warn, error",
		}
	}

	_, _, _, err := c.Theme.Colors()
	return err
}

// Colors parses the theme colors.
func (t ThemeConfig) Colors() (border, text, status core.Color, err error) {
	if border, err = parseColor("theme.border", t.Border); err != nil {
		return
	}
	if text, err = parseColor("theme.text", t.Text); err != nil {
		return
	}
	status, err = parseColor("theme.status", t.Status)
	return
}

func parseColor(path, value string) (core.Color, error) {
	if strings.TrimSpace(value) == "" {
		return core.ColorDefault, nil
	}
	c, err := core.ParseHex(value)
	if err != nil {
		return core.ColorDefault, &ValidationError{
			Path:    path,
			Value:   value,
			Message: "must be a hex color like #rrggbb",
		}
	}
	return c, nil
}
