// Package mathsheet generates printable multiplication worksheets as PDF
// using headless Chrome.
//
// # Quick Start
//
//	comp, err := mathsheet.NewComposer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer comp.Close()
//
//	id := mathsheet.ResolveSeed(nil, nil)
//	_, err = comp.ComposeFile(ctx, mathsheet.Input{
//	    WorksheetID: id,
//	    Language:    mathsheet.ParseLanguage("pl"),
//	}, "worksheet.pdf")
//
// # Worksheets
//
// Every worksheet holds the full 10×10 multiplication table, 100 problems,
// each exactly once. The worksheet ID seeds the shuffle, so printing the
// same ID again gives the same sheet, which makes answer keys easy to
// regenerate. IDs drawn by ResolveSeed fall in [100000, 999999].
//
// The document has a title, an ID line, instructions, and a grid of
// "a × b = ______" cells, 5 columns by 20 rows by default.
//
// # Languages
//
// English, Norwegian and Polish are built in. ParseLanguage accepts short
// codes and BCP 47 tags ("pl-PL", "nb") and falls back to English.
//
// # Fonts
//
// FontResolver scans candidate font files in order. The first one found is
// embedded through @font-face; with none, the browser's sans-serif is used.
//
// # Configuration
//
//	comp, err := mathsheet.NewComposer(
//	    mathsheet.WithTimeout(time.Minute),
//	    mathsheet.WithStyle("large-print"),
//	    mathsheet.WithAssetPath("/path/to/assets"),
//	)
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── classroom.css
//	└── templates/
//	    └── worksheet.html
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run (~/.cache/rod/browser/).
//
// For containers and CI, set ROD_NO_SANDBOX=1 to disable the Chrome
// sandbox. Use ROD_BROWSER_BIN to point at a specific Chrome binary.
package mathsheet
