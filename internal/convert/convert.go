package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dealdesk/dealdesk/constants"
	"github.com/dealdesk/dealdesk/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pandoc    string // binary name or absolute path; if empty -> "pandoc"
	Antiword  string // binary name or absolute path; if empty -> "antiword"
}

// FromCommon maps the app-level conversion config onto this package.
func FromCommon(cfg common.ConvertConfig) Config {
	return Config{Pdftotext: cfg.Pdftotext, Pandoc: cfg.Pandoc, Antiword: cfg.Antiword}
}

type Result struct {
	Text     string
	Pages    int
	Format   string // constants.PDF | constants.WORD
	Method   string // "pdf-text" | "pandoc" | "antiword"
	Duration time.Duration
	Warnings []string
}

type Converter struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewConverter(cfg Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pandoc == "" {
		cfg.Pandoc = "pandoc"
	}
	if cfg.Antiword == "" {
		cfg.Antiword = "antiword"
	}
	return &Converter{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Convert picks a strategy based on file extension. Spreadsheets are
// deliberately absent: they are stored but never converted to text.
func (c *Converter) Convert(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	c.logger.Debug("starting text conversion", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := c.convertPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.WORD:
		res, err := c.convertWord(ctx, path, ext)
		res.Duration = time.Since(start)
		return res, err
	default:
		c.logger.Error("unsupported conversion extension", "extension", ext)
		return Result{}, &ConvertError{Err: fmt.Errorf("unsupported extension: %q", ext)}
	}
}
