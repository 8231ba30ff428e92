// Package handler provides HTTP handlers for the translation gateway.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds what NewRouter needs besides the handler.
type RouterConfig struct {
	// AllowedOrigin is the single browser origin allowed on /translate.
	AllowedOrigin string

	Logger *slog.Logger

	// Console enables colorized request lines.
	Console bool

	// Recorder, when set, receives per-request metrics.
	Recorder Recorder

	// MetricsPath and MetricsHandler mount the metrics exposition endpoint when both are set.
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter wires middleware and routes around h.
func NewRouter(h *TranslateHandler, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger, cfg.Console))
	if cfg.Recorder != nil {
		router.Use(MetricsMiddleware(cfg.Recorder))
	}

	router.GET("/", h.HandleHealth)

	translate := router.Group("/translate", CORSMiddleware(cfg.AllowedOrigin))
	translate.POST("", h.HandleTranslate)
	// Preflight is answered by the CORS middleware; the route only makes it reachable.
	translate.OPTIONS("", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	if cfg.MetricsPath != "" && cfg.MetricsHandler != nil {
		router.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})

	return router
}
