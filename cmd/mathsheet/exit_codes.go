package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mathsheet"
	"github.com/alnah/go-mathsheet/internal/assets"
	"github.com/alnah/go-mathsheet/internal/config"
	"github.com/alnah/go-mathsheet/internal/dateutil"
)

// Exit codes for the mathsheet CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Worksheet written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output directory or file not writable, input file missing
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, mathsheet.ErrBrowserConnect) ||
		errors.Is(err, mathsheet.ErrPageCreate) ||
		errors.Is(err, mathsheet.ErrPageLoad) ||
		errors.Is(err, mathsheet.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mathsheet.ErrWritePDF) ||
		errors.Is(err, ErrOutputDir) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, mathsheet.ErrInvalidSeed) ||
		errors.Is(err, mathsheet.ErrInvalidColumns) ||
		errors.Is(err, mathsheet.ErrInvalidPageSize) ||
		errors.Is(err, mathsheet.ErrInvalidOrientation) ||
		errors.Is(err, mathsheet.ErrInvalidMargin) ||
		errors.Is(err, mathsheet.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
