package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName is returned for names that are empty or would
	// escape the styles/ or templates/ directory.
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid asset directory")
	ErrAssetRead       = errors.New("failed to read asset")

	// ErrPathTraversal means a symlink inside the asset directory points outside it.
	ErrPathTraversal = errors.New("asset resolves outside asset directory")
)
