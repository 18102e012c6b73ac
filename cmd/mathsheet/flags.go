package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// textFlags overrides the localized worksheet text.
type textFlags struct {
	title        string
	instructions string
}

// assetFlags holds font and styling flags.
type assetFlags struct {
	font      string // prepended to the font candidates
	style     string // style name or CSS file path
	assetPath string // custom asset directory
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	seed     int64
	seedSet  bool // --seed given explicitly
	out      string
	lang     string
	columns  int
	timeout  string
	htmlOnly bool
	page     pageFlags
	text     textFlags
	assets   assetFlags
}

// userSeed returns the explicit seed, or nil when --seed was absent.
func (f *generateFlags) userSeed() *int64 {
	if !f.seedSet {
		return nil
	}
	seed := f.seed
	return &seed
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolution details")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.size, "page-size", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addTextFlags adds worksheet text flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.StringVar(&f.title, "title", "", "worksheet title (default: localized)")
	fs.StringVar(&f.instructions, "instructions", "", "instructions, inline Markdown (default: localized)")
}

// addAssetFlags adds font and style flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.font, "font", "", "font file tried before the configured candidates")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseGenerateFlags parses generate flags and returns positional args.
// name is used in error messages ("generate" or "config").
func parseGenerateFlags(name string, args []string, stderr io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &generateFlags{}

	fs.Int64Var(&f.seed, "seed", 0, "worksheet ID, also the shuffle seed (default: random)")
	fs.StringVarP(&f.out, "out", "o", "", "output file path")
	fs.StringVarP(&f.lang, "lang", "l", "", "language: en, no, pl")
	fs.IntVar(&f.columns, "columns", 0, "grid columns, must divide 100 (default: 5)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html", false, "write HTML instead of PDF")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addTextFlags(fs, &f.text)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.seedSet = fs.Changed("seed")

	return f, fs.Args(), nil
}
