package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mathsheet/internal/fileutil"
)

// WorksheetFontFamily is the family name registered for a resolved font file.
const WorksheetFontFamily = "WorksheetSans"

// FallbackFontStack is used when no font file is available.
const FallbackFontStack = "Helvetica, Arial, sans-serif"

// FontFaceCSS returns CSS that registers the font at fontPath and applies it
// to the document body. An empty fontPath yields a rule that pins the body to
// the fallback stack.
func FontFaceCSS(fontPath string) (string, error) {
	if fontPath == "" {
		return "body{font-family:" + FallbackFontStack + ";}", nil
	}

	fontURL, err := fileutil.AbsFileURL(fontPath)
	if err != nil {
		return "", fmt.Errorf("resolving font path %q: %w", fontPath, err)
	}

	var b strings.Builder
	b.WriteString("@font-face{font-family:\"")
	b.WriteString(WorksheetFontFamily)
	b.WriteString("\";src:url(\"")
	b.WriteString(escapeCSSString(fontURL))
	b.WriteString("\")")
	if format := fontFormat(fontPath); format != "" {
		b.WriteString(" format(\"")
		b.WriteString(format)
		b.WriteString("\")")
	}
	b.WriteString(";}")
	b.WriteString("body{font-family:\"")
	b.WriteString(WorksheetFontFamily)
	b.WriteString("\",")
	b.WriteString(FallbackFontStack)
	b.WriteString(";}")
	return b.String(), nil
}

// escapeCSSString escapes characters that would end a double-quoted CSS string.
func escapeCSSString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `, "\r", `\d `)
	return r.Replace(s)
}

func fontFormat(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".ttf"):
		return "truetype"
	case strings.HasSuffix(lower, ".otf"):
		return "opentype"
	case strings.HasSuffix(lower, ".woff2"):
		return "woff2"
	case strings.HasSuffix(lower, ".woff"):
		return "woff"
	default:
		return ""
	}
}
