package server

import (
	"net/http"

	appmw "github.com/artisanbay/sellerhub/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	auth := appmw.RequireBearer(s.verifier)
	rateLimiter := appmw.RateLimiter(5)

	api := s.E.Group("/api", appmw.Logger, auth)

	api.GET("/seller", s.sellerHandler.Get)
	api.PUT("/seller/:id", s.sellerHandler.Update)
	api.GET("/seller/:id/stats", s.sellerHandler.Stats)
	api.POST("/seller/:id/logo", s.sellerHandler.UploadLogo)

	api.POST("/orders/:id/message", s.orderHandler.SaveBuyerMessage, rateLimiter)
	api.POST("/orders/:id/savesellermsg", s.orderHandler.SaveSellerMessage, rateLimiter)

	// Locally stored assets (logos, banners).
	s.E.Static("/assets", s.Cfg.AssetDir)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
