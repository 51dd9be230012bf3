package handler

import (
	"context"
	"net/http"
	"time"

	"guidematch/config"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

// MetaHandler serves the informational endpoints: root, health and status.
type MetaHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewMetaHandler is the constructor for MetaHandler, injected by Fx.
func NewMetaHandler(cfg *config.Config, db *gorm.DB) *MetaHandler {
	return &MetaHandler{cfg: cfg, db: db}
}

// Health reports that the API is up.
func (h *MetaHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"message":     "Tour guide directory API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     apiVersion,
		"environment": h.cfg.Env.Env,
	})
}

// Status reports detailed system information, including a live store check.
func (h *MetaHandler) Status(c echo.Context) error {
	database := "connected"
	if err := h.pingDB(c.Request().Context()); err != nil {
		database = "unavailable"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"application": "Tour guide directory API",
		"status":      "operational",
		"database":    database,
		"api_version": "v1",
		"endpoints": map[string]string{
			"health": "/api/health",
			"status": "/api/status",
			"auth":   "/api/auth/*",
			"guides": "/api/guides",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root provides basic API information.
func (h *MetaHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Welcome to the tour guide directory API",
		"description":  "A platform connecting travelers with personal tour guides",
		"version":      apiVersion,
		"health_check": "/api/health",
	})
}

func (h *MetaHandler) pingDB(ctx context.Context) error {
	if h.db == nil {
		return nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(pingCtx)
}
