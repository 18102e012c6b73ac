package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrTextRender indicates inline Markdown rendering failed.
var ErrTextRender = errors.New("text rendering failed")

// TextRenderer converts short free text into HTML safe for the worksheet body.
type TextRenderer interface {
	RenderInline(ctx context.Context, text string) (template.HTML, error)
}

// GoldmarkTextRenderer renders inline Markdown (emphasis, strong, code,
// strikethrough) with goldmark. Raw HTML in the input is omitted.
type GoldmarkTextRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkTextRenderer creates a renderer with the strikethrough extension.
func NewGoldmarkTextRenderer() *GoldmarkTextRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &GoldmarkTextRenderer{md: md}
}

// RenderInline converts text to HTML and strips the single enclosing
// paragraph goldmark wraps around it. Multiple paragraphs are kept as-is.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (r *GoldmarkTextRenderer) RenderInline(ctx context.Context, text string) (template.HTML, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(text), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrTextRender, err)}
			return
		}
		done <- result{html: unwrapParagraph(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return template.HTML(res.html), res.err // #nosec G203 -- goldmark output, raw HTML omitted
	}
}

func unwrapParagraph(s string) string {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "<p>")
	if !ok {
		return s
	}
	inner, ok = strings.CutSuffix(inner, "</p>")
	if !ok || strings.Contains(inner, "<p>") {
		return s
	}
	return inner
}

var _ TextRenderer = (*GoldmarkTextRenderer)(nil)
