// Package config collects the server settings supplied through environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel       = "SCREEN_MEASURE_LOG_LEVEL"
	EnvProfile        = "SCREEN_MEASURE_PROFILE"
	EnvLayeredWindows = "SCREEN_MEASURE_LAYERED_WINDOWS"
)

// Config holds the server settings.
type Config struct {
	// Debug enables debug logging.
	Debug bool

	// ProfilePath is the YAML profile the palette is loaded from at startup
	// and saved to by the palette_save tool. Empty disables persistence.
	ProfilePath string

	// Layered records whether the display supports translucent windows.
	Layered bool
}

// FromEnv builds a Config using getenv to look up variables. Pass
// os.Getenv in production.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Debug:       strings.EqualFold(getenv(EnvLogLevel), "debug"),
		ProfilePath: getenv(EnvProfile),
		Layered:     parseBool(getenv(EnvLayeredWindows), true),
	}
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = DefaultProfilePath()
	}
	return cfg
}

// LayeredWindows answers the windowing capability query. It has the
// signature of colors.LayeredCapability.
func (c Config) LayeredWindows() bool {
	return c.Layered
}

// DefaultProfilePath returns screen-measure/profile.yaml under the user's
// config directory, or "" if that directory is unknown.
func DefaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "screen-measure", "profile.yaml")
}

func parseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def
	case "0", "false", "no", "off":
		return false
	}
	return true
}
