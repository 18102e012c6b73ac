package assets

import (
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultStyleName      = "default"
	WorksheetTemplateName = "worksheet"
)

// AssetLoader loads worksheet CSS styles and HTML templates by bare name,
// without the .css or .html extension.
type AssetLoader interface {
	LoadStyle(name string) (string, error)    // ErrStyleNotFound, ErrInvalidAssetName
	LoadTemplate(name string) (string, error) // ErrTemplateNotFound, ErrInvalidAssetName
}

// ValidateAssetName rejects names that are empty or contain separators,
// dots, or NUL, so a name always maps to exactly one file in one directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
