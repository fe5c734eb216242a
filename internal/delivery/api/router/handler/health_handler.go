// Package handler contains the API server's HTTP handlers.
package handler

import (
	"net/http"

	"famhealth/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up. It is public and never runs the gate.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
