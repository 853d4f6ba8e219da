// Command parsedoc converts a single document to text and prints the
// extracted deal fields as JSON. Useful for tuning patterns against real
// documents without running the full service.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/convert"
	"github.com/dealdesk/dealdesk/internal/extract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsedoc <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Convert.Timeout)
	defer cancel()

	converter := convert.NewConverter(convert.FromCommon(cfg.Convert), logger)

	start := time.Now()
	res, err := converter.Convert(ctx, path)
	if err != nil {
		logger.Error("conversion failed", "path", path, "error", err)
		os.Exit(1)
	}

	fields := extract.Extract(res.Text)
	logger.Info("extraction done",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"fields", fields.Count(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fields); err != nil {
		logger.Error("encode fields", "error", err)
		os.Exit(1)
	}
}
