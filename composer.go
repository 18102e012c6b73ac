package mathsheet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mathsheet/internal/assets"
	"github.com/alnah/go-mathsheet/internal/fileutil"
	"github.com/alnah/go-mathsheet/internal/pipeline"
)

var (
	_ pipeline.CSSInjector  = (*pipeline.CSSInjection)(nil)
	_ pipeline.TextRenderer = (*pipeline.GoldmarkTextRenderer)(nil)
	_ pdfConverter          = (*rodConverter)(nil)
)

// Composer turns a worksheet Input into HTML and PDF.
// Create with NewComposer, call Compose or ComposeFile, and Close when done.
// A Composer is not safe for concurrent use.
type Composer struct {
	cfg          composerConfig
	assetLoader  assets.AssetLoader
	style        string
	worksheet    *pipeline.WorksheetRenderer
	textRenderer pipeline.TextRenderer
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// NewComposer creates a Composer. Assets are resolved and the worksheet
// template is parsed up front, so errors surface here rather than per sheet.
func NewComposer(opts ...Option) (*Composer, error) {
	c := &Composer{
		cfg:          composerConfig{timeout: defaultTimeout},
		assetLoader:  assets.NewEmbeddedLoader(),
		textRenderer: pipeline.NewGoldmarkTextRenderer(),
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := c.assetLoader.LoadTemplate(assets.WorksheetTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading worksheet template: %w", err)
	}
	c.worksheet, err = pipeline.NewWorksheetRenderer(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}
	return c, nil
}

// resolveStyle loads the CSS for the configured style name or file path.
func (c *Composer) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}

// Compose builds the worksheet and, unless input.HTMLOnly is set, renders it
// to PDF. The context bounds the whole operation.
// Internal panics are recovered and returned as errors.
func (c *Composer) Compose(ctx context.Context, input Input) (result *ComposeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang := input.Language.normalize()
	text := Lookup(lang)
	if input.Title != "" {
		text.Title = input.Title
	}
	if input.Instructions != "" {
		text.Instructions = input.Instructions
	}

	instructions, err := c.textRenderer.RenderInline(ctx, text.Instructions)
	if err != nil {
		return nil, fmt.Errorf("rendering instructions: %w", err)
	}

	columns := input.columns()
	problems := GenerateProblems(input.WorksheetID)
	grid := layoutGrid(problems, columns)

	htmlContent, err := c.worksheet.Render(ctx, &pipeline.WorksheetData{
		Lang:         lang.Code(),
		Title:        text.Title,
		IDLabel:      text.WorksheetIDLabel,
		WorksheetID:  input.WorksheetID,
		Instructions: instructions,
		Rows:         grid,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	// Style first, font rule last so it wins over the style's font-family.
	fontCSS, err := pipeline.FontFaceCSS(input.FontPath)
	if err != nil {
		return nil, err
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.style)
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, fontCSS)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ComposeResult{
		HTML:        []byte(htmlContent),
		WorksheetID: input.WorksheetID,
		Language:    lang,
		Problems:    problems,
		Rows:        len(grid),
		Columns:     columns,
		FontPath:    input.FontPath,
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// ComposeFile composes the worksheet and writes it to path: the PDF, or the
// HTML when input.HTMLOnly is set. The parent directory must exist.
func (c *Composer) ComposeFile(ctx context.Context, input Input, path string) (*ComposeResult, error) {
	res, err := c.Compose(ctx, input)
	if err != nil {
		return nil, err
	}

	data := res.PDF
	if input.HTMLOnly {
		data = res.HTML
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- output is a printable handout
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Composer) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
