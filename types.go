package mathsheet

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5 // 36pt
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 portrait with half-inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q (must be a4, letter, or legal)", ErrInvalidPageSize, p.Size)
	}
	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input describes one worksheet.
type Input struct {
	WorksheetID  int64         // shown on the sheet and used as the shuffle seed (required, > 0)
	Language     Language      // zero value is English
	Title        string        // overrides the localized title
	Instructions string        // overrides the localized instructions; inline Markdown
	Columns      int           // grid width, 0 = DefaultColumns; must divide ProblemCount
	FontPath     string        // resolved font file, empty = built-in sans-serif
	Page         *PageSettings // nil = DefaultPageSettings
	HTMLOnly     bool          // skip PDF rendering
}

// Validate checks the input before composition.
func (in Input) Validate() error {
	if err := ValidateSeed(in.WorksheetID); err != nil {
		return err
	}
	if in.Columns != 0 {
		if in.Columns < 1 || in.Columns > MaxColumns {
			return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidColumns, in.Columns, MaxColumns)
		}
		if ProblemCount%in.Columns != 0 {
			return fmt.Errorf("%w: %d does not divide %d problems evenly", ErrInvalidColumns, in.Columns, ProblemCount)
		}
	}
	return in.Page.Validate()
}

func (in Input) columns() int {
	if in.Columns == 0 {
		return DefaultColumns
	}
	return in.Columns
}

// ComposeResult holds the output of a composition.
type ComposeResult struct {
	HTML        []byte    // intermediate HTML document
	PDF         []byte    // nil when Input.HTMLOnly is set
	WorksheetID int64     // echo of Input.WorksheetID
	Language    Language  // language actually printed
	Problems    []Problem // grid order, row-major
	Rows        int
	Columns     int
	FontPath    string // empty when the built-in font was used
}

// Option configures a Composer.
type Option func(*Composer)

type composerConfig struct {
	timeout    time.Duration
	assetPath  string
	styleInput string // style name or CSS file path
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mathsheet: WithTimeout duration must be positive")
	}
	return func(c *Composer) {
		c.cfg.timeout = d
	}
}

// WithAssetPath loads styles and the worksheet template from dir,
// falling back to the embedded assets for anything missing there.
func WithAssetPath(dir string) Option {
	return func(c *Composer) {
		c.cfg.assetPath = dir
	}
}

// WithStyle selects a style by name ("default", "large-print") or by CSS
// file path.
func WithStyle(nameOrPath string) Option {
	return func(c *Composer) {
		c.cfg.styleInput = nameOrPath
	}
}
