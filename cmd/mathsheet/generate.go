package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mathsheet"
	"github.com/alnah/go-mathsheet/internal/assets"
	"github.com/alnah/go-mathsheet/internal/config"
	"github.com/alnah/go-mathsheet/internal/dateutil"
	"github.com/alnah/go-mathsheet/internal/fileutil"
	"github.com/alnah/go-mathsheet/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrOutputDir      = errors.New("failed to create output directory")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// dirPermissions is used for the default output directory: rwxr-x---.
const dirPermissions = 0o750

// defaultTimeout mirrors the library default so help text and CLI agree.
const defaultTimeout = 30 * time.Second

// generatePlan is everything resolved before composing a worksheet.
type generatePlan struct {
	input    mathsheet.Input
	outPath  string
	explicit bool // --out given; parent directory is not created
	timeout  time.Duration
}

// runGenerate resolves configuration, writes one worksheet, and prints a summary.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(cmdGenerate, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	log := newLogger(env, flags.common)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	plan, err := buildPlan(flags, envCfg, cfg, env, log)
	if err != nil {
		return err
	}
	// Fail on bad columns or page settings before touching the filesystem.
	if err := plan.input.Validate(); err != nil {
		return err
	}

	if !plan.explicit {
		dir := filepath.Dir(plan.outPath)
		if err := fileutil.EnsureDir(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputDir, dir, err)
		}
	}

	comp, err := env.NewComposer(
		mathsheet.WithTimeout(plan.timeout),
		mathsheet.WithStyle(cfg.Assets.Style),
		mathsheet.WithAssetPath(cfg.Assets.BasePath),
	)
	if err != nil {
		return err
	}
	defer func() { _ = comp.Close() }()

	log.Verbosef("Composing worksheet %d (%s, %d columns)", plan.input.WorksheetID, plan.input.Language.Code(), cfg.Grid.Columns)
	start := env.Now()
	res, err := comp.ComposeFile(ctx, plan.input, plan.outPath)
	if err != nil {
		return err
	}
	log.Verbosef("Rendered in %v", env.Now().Sub(start).Round(time.Millisecond))

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Done!")
		fmt.Fprintf(env.Stdout, "File: %s\n", plan.outPath)
		fmt.Fprintf(env.Stdout, "Worksheet ID: %d\n", res.WorksheetID)
		fmt.Fprintf(env.Stdout, "Language: %s\n", res.Language.Code())
	}
	return nil
}

// resolveConfig loads the config file (flag, then MATHSHEET_CONFIG) and
// overlays environment and flag values.
func resolveConfig(flags *generateFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.lang != "" {
		cfg.Language = flags.lang
	}
	if flags.columns != 0 {
		cfg.Grid.Columns = flags.columns
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.text.title != "" {
		cfg.Text.Title = flags.text.title
	}
	if flags.text.instructions != "" {
		cfg.Text.Instructions = flags.text.instructions
	}
	if flags.assets.font != "" {
		base := cfg.Fonts.Paths
		if len(base) == 0 {
			base = mathsheet.DefaultFontCandidates
		}
		cfg.Fonts.Paths = append([]string{flags.assets.font}, base...)
	}
	if flags.assets.style != "" {
		cfg.Assets.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// buildPlan turns the merged config into a worksheet Input and output path.
func buildPlan(flags *generateFlags, envCfg *envConfig, cfg *config.Config, env *Environment, log *logger) (*generatePlan, error) {
	user := flags.userSeed()
	if user != nil {
		if err := mathsheet.ValidateSeed(*user); err != nil {
			return nil, err
		}
	}
	seed := mathsheet.ResolveSeed(user, env.DrawSeed)

	lang, matched := mathsheet.MatchLanguage(cfg.Language)
	if !matched {
		log.Verbosef("Unknown language %q, using %s", cfg.Language, lang.Code())
	}

	candidates := cfg.Fonts.Paths
	if len(candidates) == 0 {
		candidates = mathsheet.DefaultFontCandidates
	}
	fontPath, found := mathsheet.FontResolver{Candidates: candidates}.Resolve()
	if found {
		log.Verbosef("Font: %s", fontPath)
	} else {
		log.Verbosef("No font file found, using built-in sans-serif%s", hints.ForFontFallback(candidates))
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return nil, err
	}

	plan := &generatePlan{
		input: mathsheet.Input{
			WorksheetID:  seed,
			Language:     lang,
			Title:        cfg.Text.Title,
			Instructions: cfg.Text.Instructions,
			Columns:      cfg.Grid.Columns,
			FontPath:     fontPath,
			Page:         pageSettings(cfg),
			HTMLOnly:     flags.htmlOnly,
		},
		explicit: flags.out != "",
		timeout:  timeout,
	}

	if plan.explicit {
		plan.outPath = flags.out
	} else {
		plan.outPath, err = defaultOutputPath(cfg, seed, env.Now(), flags.htmlOnly)
		if err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// pageSettings converts the page config, filling blanks with defaults.
func pageSettings(cfg *config.Config) *mathsheet.PageSettings {
	page := mathsheet.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

// defaultOutputPath builds <dir>/worksheet_<seed>_<timestamp>.<ext>.
func defaultOutputPath(cfg *config.Config, seed int64, now time.Time, htmlOnly bool) (string, error) {
	stamp, err := dateutil.FormatTimestamp(cfg.Output.TimestampFormat, now)
	if err != nil {
		return "", err
	}
	ext := "pdf"
	if htmlOnly {
		ext = "html"
	}
	dir := cfg.Output.DefaultDir
	if dir == "" {
		dir = config.DefaultOutputDir
	}
	return filepath.Join(dir, fmt.Sprintf("worksheet_%d_%s.%s", seed, stamp, ext)), nil
}

// resolveTimeout picks the flag value, then MATHSHEET_TIMEOUT, then the default.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	return defaultTimeout, nil
}

// errorWithHints appends actionable hints for well-known failures.
func errorWithHints(err error, explicitOut bool) string {
	msg := err.Error()
	switch {
	case errors.Is(err, mathsheet.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, mathsheet.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound()
	case errors.Is(err, ErrOutputDir):
		msg += hints.ForOutputDirectory()
	case errors.Is(err, mathsheet.ErrWritePDF) && explicitOut:
		msg += hints.ForOutputFile()
	case errors.Is(err, assets.ErrStyleNotFound):
		msg += hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	}
	return msg
}
