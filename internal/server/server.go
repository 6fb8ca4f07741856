package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/artisanbay/sellerhub/internal/config"
	"github.com/artisanbay/sellerhub/internal/database"
	"github.com/artisanbay/sellerhub/internal/handlers"
	"github.com/artisanbay/sellerhub/internal/logging"
	"github.com/artisanbay/sellerhub/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg *config.Config

	sellerHandler *handlers.SellerHandler
	orderHandler  *handlers.OrderMessageHandler
	verifier      *database.SurrealTokenVerifier
}

// New creates a new Server instance.
func New() *Server {
	logging.New()
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	return NewWithDeps(cfg, db)
}

// NewWithDeps creates a Server from pre-built dependencies. Tests and the
// CLI injector use this to supply their own config and connection.
func NewWithDeps(cfg *config.Config, db *surrealdb.DB) *Server {
	sellerStore := database.NewSurrealSellerStore(db, cfg.DBNs, cfg.DBDb)
	orderStore := database.NewSurrealOrderStore(db, cfg.DBNs, cfg.DBDb)
	assetStore := storage.NewOsStore(cfg.AssetDir)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	return &Server{
		E:             e,
		DB:            db,
		Cfg:           cfg,
		sellerHandler: handlers.NewSellerHandler(sellerStore, assetStore),
		orderHandler:  handlers.NewOrderMessageHandler(orderStore),
		verifier:      database.NewSurrealTokenVerifier(db),
	}
}
