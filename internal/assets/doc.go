// Package assets provides CSS styles and HTML templates for worksheet rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, large-print) and the
// worksheet page template, embedded at compile time.
//
// FilesystemLoader lets a school override the look of a worksheet from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the composer. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found there, so a directory only needs the files it overrides.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # e.g. classroom.css
//	└── templates/
//	    └── {name}.html          # e.g. worksheet.html
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
