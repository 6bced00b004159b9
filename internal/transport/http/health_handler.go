package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"weathervane/internal/util"
)

// Pinger is the slice of the database pool the health checks need.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func RegisterHealth(e *echo.Echo, db Pinger) {
	handler := &HealthHandler{db: db}

	e.GET("/api/health", handler.health)
	e.GET("/api/db-check", handler.dbCheck)
}

func (h *HealthHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Data("status", "healthy"))
}

func (h *HealthHandler) dbCheck(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error(err.Error()))
	}
	return c.JSON(http.StatusOK, util.Data("database_status", "healthy"))
}
