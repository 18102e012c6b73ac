package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-mathsheet/internal/config"
)

// ErrInvalidEnv indicates a MATHSHEET_* variable could not be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

const envPrefix = "MATHSHEET_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        `env:"CONFIG"`     // config file name or path
	Language   string        `env:"LANG"`       // worksheet language code
	OutputDir  string        `env:"OUTPUT_DIR"` // directory for default-named worksheets
	FontPaths  []string      `env:"FONT_PATHS" envSeparator:","`
	Style      string        `env:"STYLE"`      // style name or CSS path
	AssetPath  string        `env:"ASSET_PATH"` // custom asset directory
	Timeout    time.Duration `env:"TIMEOUT"`    // PDF generation timeout
	Container  bool          `env:"CONTAINER"`  // force container detection in doctor
}

// knownEnvVars lists valid MATHSHEET_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MATHSHEET_CONFIG":     true,
	"MATHSHEET_LANG":       true,
	"MATHSHEET_OUTPUT_DIR": true,
	"MATHSHEET_FONT_PATHS": true,
	"MATHSHEET_STYLE":      true,
	"MATHSHEET_ASSET_PATH": true,
	"MATHSHEET_TIMEOUT":    true,
	"MATHSHEET_CONTAINER":  true,
}

// loadEnvConfig reads MATHSHEET_* variables.
func loadEnvConfig() (*envConfig, error) {
	cfg, err := env.ParseAsWithOptions[envConfig](env.Options{Prefix: envPrefix})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: %sTIMEOUT must be positive", ErrInvalidEnv, envPrefix)
	}
	return &cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized MATHSHEET_* variables.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays set environment values on cfg.
// Order of precedence: CLI flags > env vars > config file > defaults.
// Flags are applied afterwards by mergeFlags.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.Language != "" {
		cfg.Language = e.Language
	}
	if e.OutputDir != "" {
		cfg.Output.DefaultDir = e.OutputDir
	}
	if len(e.FontPaths) > 0 {
		cfg.Fonts.Paths = e.FontPaths
	}
	if e.Style != "" {
		cfg.Assets.Style = e.Style
	}
	if e.AssetPath != "" {
		cfg.Assets.BasePath = e.AssetPath
	}
}
