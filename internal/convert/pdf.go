package convert

import (
	"context"
	"strings"

	"github.com/dealdesk/dealdesk/constants"
)

func (c *Converter) convertPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := c.runner.Run(ctx, c.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Format: constants.PDF, Warnings: []string{string(errb)}},
			toolError(c.cfg.Pdftotext, errb, err)
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return Result{Text: text, Pages: pages, Format: constants.PDF, Method: "pdf-text"}, nil
}
