package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrWorksheetRender indicates the worksheet template failed to execute.
var ErrWorksheetRender = errors.New("worksheet template rendering failed")

// WorksheetData is everything the worksheet template prints.
type WorksheetData struct {
	Lang         string // BCP 47 code for the html lang attribute
	Title        string
	IDLabel      string
	WorksheetID  int64
	Instructions template.HTML // pre-rendered, trusted
	Rows         [][]string    // grid cells, row-major
}

// WorksheetRenderer renders WorksheetData into a standalone HTML5 document.
type WorksheetRenderer struct {
	tmpl *template.Template
}

// NewWorksheetRenderer parses the worksheet template once.
func NewWorksheetRenderer(tmplContent string) (*WorksheetRenderer, error) {
	tmpl, err := template.New("worksheet").Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing worksheet template: %w", err)
	}
	return &WorksheetRenderer{tmpl: tmpl}, nil
}

// Render executes the template. Text fields are HTML-escaped by html/template.
func (w *WorksheetRenderer) Render(ctx context.Context, data *WorksheetData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil data", ErrWorksheetRender)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWorksheetRender, err)
	}
	return buf.String(), nil
}
