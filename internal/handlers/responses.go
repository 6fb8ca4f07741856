package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusResponse is the standard envelope for write endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, StatusResponse{Success: false, Error: message})
}
