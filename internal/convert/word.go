package convert

import (
	"context"

	"github.com/dealdesk/dealdesk/constants"
)

// convertWord shells out per subformat: pandoc handles the zipped .docx
// container, antiword the legacy binary .doc format.
func (c *Converter) convertWord(ctx context.Context, path, ext string) (Result, error) {
	if ext == "doc" {
		// antiword <path>
		out, errb, err := c.runner.Run(ctx, c.cfg.Antiword, path)
		if err != nil {
			return Result{Format: constants.WORD, Warnings: []string{string(errb)}},
				toolError(c.cfg.Antiword, errb, err)
		}
		return Result{Text: string(out), Pages: 1, Format: constants.WORD, Method: "antiword"}, nil
	}

	// pandoc -f docx -t plain <path>
	out, errb, err := c.runner.Run(ctx, c.cfg.Pandoc, "-f", "docx", "-t", "plain", path)
	if err != nil {
		return Result{Format: constants.WORD, Warnings: []string{string(errb)}},
			toolError(c.cfg.Pandoc, errb, err)
	}
	return Result{Text: string(out), Pages: 1, Format: constants.WORD, Method: "pandoc"}, nil
}
