// Package pipeline assembles the HTML document for a worksheet.
//
// The stages are:
//   - Inline Markdown rendering of free text via Goldmark
//   - Worksheet template rendering (title, ID line, instructions, grid)
//   - CSS injection, including an optional @font-face rule
//
// PDF generation is handled separately by the root mathsheet package using
// headless Chrome (go-rod). This package only produces HTML.
package pipeline
