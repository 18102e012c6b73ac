// Package config loads and validates worksheet configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mathsheet/internal/dateutil"
	"github.com/alnah/go-mathsheet/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxLanguageLength     = 35 // BCP 47 tags stay well under this
	MaxPathLength         = 4096
	MaxPageSizeLength     = 10 // "letter", "a4", "legal"
	MaxOrientationLength  = 10 // "portrait", "landscape"
	MaxStyleLength        = 100
	MaxTitleLength        = 200
	MaxInstructionsLength = 500
	MaxFontPaths          = 16
	MaxColumns            = 10
	MinMargin             = 0.25
	MaxMargin             = 3.0
)

// Defaults mirrored by DefaultConfig.
const (
	DefaultLanguage  = "en"
	DefaultOutputDir = "worksheets"
	DefaultPageSize  = "a4"
	DefaultColumns   = 5
	DefaultMargin    = 0.5 // inches, 36pt
)

// Config holds all configuration for worksheet generation.
type Config struct {
	Language string       `yaml:"language"`
	Output   OutputConfig `yaml:"output"`
	Page     PageConfig   `yaml:"page"`
	Grid     GridConfig   `yaml:"grid"`
	Fonts    FontsConfig  `yaml:"fonts"`
	Assets   AssetsConfig `yaml:"assets"`
	Text     TextConfig   `yaml:"text"`
}

// OutputConfig controls where generated worksheets land.
type OutputConfig struct {
	DefaultDir      string `yaml:"defaultDir"`      // used when --out is not given
	TimestampFormat string `yaml:"timestampFormat"` // token format or preset name
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// GridConfig defines the problem grid.
type GridConfig struct {
	Columns int `yaml:"columns"`
}

// FontsConfig lists font files to try, in order. Empty means built-in candidates.
type FontsConfig struct {
	Paths []string `yaml:"paths"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
	Style    string `yaml:"style"`    // style name or CSS file path
}

// TextConfig overrides the localized strings printed on the worksheet.
type TextConfig struct {
	Title        string `yaml:"title"`
	Instructions string `yaml:"instructions"` // inline Markdown
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
		Output: OutputConfig{
			DefaultDir:      DefaultOutputDir,
			TimestampFormat: dateutil.DefaultTimestampFormat,
		},
		Page: PageConfig{
			Size:        DefaultPageSize,
			Orientation: "portrait",
			Margin:      DefaultMargin,
		},
		Grid:   GridConfig{Columns: DefaultColumns},
		Assets: AssetsConfig{Style: "default"},
	}
}

// Validate checks field lengths and ranges.
// Semantic checks that depend on the worksheet (page size names, columns
// dividing the problem count) happen when the composer validates its input.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"language", c.Language, MaxLanguageLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.style", c.Assets.Style, MaxPathLength},
		{"text.title", c.Text.Title, MaxTitleLength},
		{"text.instructions", c.Text.Instructions, MaxInstructionsLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(c.Fonts.Paths) > MaxFontPaths {
		return fmt.Errorf("%w: fonts.paths has %d entries (max %d)", ErrInvalidValue, len(c.Fonts.Paths), MaxFontPaths)
	}
	for i, p := range c.Fonts.Paths {
		if err := validateFieldLength(fmt.Sprintf("fonts.paths[%d]", i), p, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Grid.Columns < 0 || c.Grid.Columns > MaxColumns {
		return fmt.Errorf("%w: grid.columns must be 0 (default) or 1..%d, got %d", ErrInvalidValue, MaxColumns, c.Grid.Columns)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.2f and %.2f, got %.2f", ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	if c.Output.TimestampFormat != "" {
		if _, err := dateutil.ParseDateFormat(dateutil.ResolveTimestampFormat(c.Output.TimestampFormat)); err != nil {
			return fmt.Errorf("output.timestampFormat: %w", err)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml / <name>.yml in the current
// directory, then in the user config directory under go-mathsheet/.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, "go-mathsheet"))
	}

	tried := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
