package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/convert"
	"github.com/dealdesk/dealdesk/internal/export"
	"github.com/dealdesk/dealdesk/internal/mls"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/dealdesk/dealdesk/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool, err := repository.Open(ctx, repository.FromCommon(cfg.Database), logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db health ok")

	txRepo := repository.NewTransactionRepository(pool, logger)
	docRepo := repository.NewDocumentRepository(pool, logger)

	srv := server.NewServer(cfg.Server, server.Deps{
		Transactions: txRepo,
		Documents:    docRepo,
		Converter:    convert.NewConverter(convert.FromCommon(cfg.Convert), logger),
		Listings:     mls.NewClient(cfg.MLS, logger),
		Exporter:     export.NewService(txRepo, logger),
		Logger:       logger,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
