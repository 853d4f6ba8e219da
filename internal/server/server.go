// Package server provides the HTTP API for the deal pipeline: document
// upload and parsing, MLS lookups, conflict detection and exports.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/convert"
	"github.com/dealdesk/dealdesk/internal/export"
	"github.com/dealdesk/dealdesk/internal/mls"
	"github.com/dealdesk/dealdesk/internal/repository"
)

// Converter turns a stored document into plain text.
type Converter interface {
	Convert(ctx context.Context, path string) (convert.Result, error)
}

// ListingClient resolves MLS numbers against the listing API.
type ListingClient interface {
	LookupByMLS(ctx context.Context, mlsNumber string) (json.RawMessage, error)
	PropertyByMLS(ctx context.Context, mlsNumber string) (*mls.Listing, error)
}

// Deps bundles the collaborators the server needs.
type Deps struct {
	Transactions repository.TransactionRepository
	Documents    repository.DocumentRepository
	Converter    Converter
	Listings     ListingClient
	Exporter     *export.Service
	Logger       *slog.Logger
}

// Server provides HTTP endpoints for the deal pipeline.
type Server struct {
	echo   *echo.Echo
	cfg    common.ServerConfig
	deps   Deps
	logger *slog.Logger
}

// NewServer creates a new HTTP server.
func NewServer(cfg common.ServerConfig, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{echo: e, cfg: cfg, deps: deps, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	api := s.echo.Group("/api")
	api.POST("/documents/upload", s.handleUploadDocument)
	api.POST("/documents/parse", s.handleParseDocument)
	api.GET("/documents/:id", s.handleGetDocument)

	api.GET("/mls", s.handleMLSLookup)
	api.POST("/mls", s.handleMLSProperty)
	api.POST("/mls/conflicts", s.handleMLSConflicts)

	api.GET("/transactions", s.handleListTransactions)
	api.GET("/transactions/export", s.handleExportTransactions)
	api.GET("/transactions/:id", s.handleGetTransaction)
	api.POST("/transactions", s.handleCreateTransaction)
	api.GET("/transactions/:id/documents", s.handleListDocuments)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting http server", "addr", s.cfg.Addr)
	return s.echo.Start(s.cfg.Addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
