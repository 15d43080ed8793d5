package quote

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrTemplateMissing reports that no quote template is available. The
// caller surfaces this as "export unavailable", it never ends a session.
var ErrTemplateMissing = errors.New("quote template not found")

// Renderer fills a quote template workbook with context fields.
// Placeholders look like {{name}} and may appear in any cell of any
// sheet; styles, merges and the rest of the template are kept intact.
type Renderer struct {
	templatePath string
}

// NewRenderer creates a renderer for the template at path.
func NewRenderer(templatePath string) *Renderer {
	return &Renderer{templatePath: templatePath}
}

// Render produces the final document bytes for one quote context.
func (r *Renderer) Render(context map[string]string) ([]byte, error) {
	if r.templatePath == "" {
		return nil, ErrTemplateMissing
	}
	if _, err := os.Stat(r.templatePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, r.templatePath)
	}

	tmpl, err := excelize.OpenFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer tmpl.Close()

	if err := fillPlaceholders(tmpl, context); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Write(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

func fillPlaceholders(wb *excelize.File, context map[string]string) error {
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("read template sheet %s: %w", sheet, err)
		}
		for rowIdx, row := range rows {
			for colIdx, raw := range row {
				if !strings.Contains(raw, "{{") {
					continue
				}
				filled := replacePlaceholders(raw, context)
				if filled == raw {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return err
				}
				if err := wb.SetCellStr(sheet, cell, filled); err != nil {
					return fmt.Errorf("fill cell %s!%s: %w", sheet, cell, err)
				}
			}
		}
	}
	return nil
}

func replacePlaceholders(raw string, context map[string]string) string {
	out := raw
	for key, value := range context {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
