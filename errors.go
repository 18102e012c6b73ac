package mathsheet

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidSeed      = errors.New("worksheet ID must be a positive integer")
	ErrTemplateRender   = errors.New("worksheet rendering failed")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrWritePDF         = errors.New("failed to write PDF")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Input validation errors.
	ErrInvalidColumns     = errors.New("invalid column count")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
