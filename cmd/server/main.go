// Package main is the entry point for the bizspeak-gateway server.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/bizspeak-gateway/internal/adapter"
	"github.com/hpn/bizspeak-gateway/internal/config"
	"github.com/hpn/bizspeak-gateway/internal/gateway"
	"github.com/hpn/bizspeak-gateway/internal/handler"
	"github.com/hpn/bizspeak-gateway/internal/metrics"
	"github.com/hpn/bizspeak-gateway/internal/security"
	"github.com/hpn/bizspeak-gateway/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// envConfigFile points at an explicit config file instead of the search paths.
const envConfigFile = "BIZSPEAK_CONFIG_FILE"

func main() {
	// =========================================================================
	// 1. Bootstrap logger until configuration is known
	// =========================================================================
	logger := setupLogger(os.Getenv("BIZSPEAK_LOGGING_LEVEL"), "json", os.Stdout)

	logger.Info("starting bizspeak-gateway")

	// =========================================================================
	// 2. Load configuration (Singleton). Missing credentials are fatal.
	// =========================================================================
	var (
		cfg *config.Configuration
		err error
	)
	if path := os.Getenv(envConfigFile); path != "" {
		cfg, err = config.GetConfigWithPath(path)
	} else {
		cfg, err = config.GetConfig()
	}
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = setupLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	if cfg.Logging.Console {
		ui.PrintBanner()
	}

	logger.Info("configuration loaded",
		slog.String("address", cfg.Address()),
		slog.String("region", cfg.AWS.Region),
		slog.String("model", cfg.Model.ModelID),
		slog.String("allowed_origin", cfg.CORS.AllowedOrigin),
		slog.Bool("metrics", cfg.Metrics.Enabled),
	)

	// =========================================================================
	// 3. Metrics
	// =========================================================================
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector = metrics.NewCollector(cfg.Metrics.Namespace, registry)
	}

	// =========================================================================
	// 4. Build the model client once; a failure is kept, not fatal
	// =========================================================================
	adapterOpts := []adapter.BedrockAdapterOption{
		adapter.WithGenerationParams(cfg.Model.GenerationParams),
		adapter.WithAdapterLogger(logger),
	}
	if collector != nil {
		adapterOpts = append(adapterOpts, adapter.WithInvokeObserver(collector))
	}

	handle := buildHandle(cfg, adapterOpts...)
	if _, err := handle.Provider(); err != nil {
		logger.Error("model client initialization failed; /translate will return 500",
			slog.String("error", err.Error()),
		)
		if cfg.Logging.Console {
			ui.PrintClientUnavailable(err.Error())
		}
	} else {
		logger.Info("model client initialized",
			slog.String("provider", adapter.ProviderName),
			slog.String("model", cfg.Model.ModelID),
		)
	}

	// =========================================================================
	// 5. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := buildRouter(cfg, handle, logger, collector)
	if err != nil {
		logger.Error("invalid prompt template", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// =========================================================================
	// 6. Start HTTP server with graceful shutdown
	// =========================================================================
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", srv.Addr))
		if cfg.Logging.Console {
			info := ui.StartupInfo{
				Address:       srv.Addr,
				Region:        cfg.AWS.Region,
				ModelID:       cfg.Model.ModelID,
				AllowedOrigin: cfg.CORS.AllowedOrigin,
				ClientReady:   handle.Available(),
			}
			if collector != nil {
				info.MetricsPath = cfg.Metrics.Path
			}
			ui.PrintStartupInfo(info)
		}

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 7. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	if cfg.Logging.Console {
		ui.PrintShutdown()
	}

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	if cfg.Logging.Console {
		ui.PrintGoodbye()
	}
}

// buildHandle constructs the Bedrock client from configuration.
func buildHandle(cfg *config.Configuration, opts ...adapter.BedrockAdapterOption) adapter.Handle {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return adapter.NewBedrockHandle(ctx, adapter.ClientConfig{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		SessionToken:    cfg.AWS.SessionToken,
		Endpoint:        cfg.AWS.Endpoint,
	}, opts...)
}

// buildRouter wires the translator, handler and middleware around handle.
// It fails only when the configured prompt template is invalid.
func buildRouter(cfg *config.Configuration, handle adapter.Handle, logger *slog.Logger, collector *metrics.Collector) (*gin.Engine, error) {
	renderer, err := gateway.NewPromptRenderer(cfg.Model.PromptTemplate)
	if err != nil {
		return nil, err
	}

	translator := gateway.NewTranslator(handle,
		gateway.WithRenderer(renderer),
		gateway.WithLogger(logger),
	)

	handlerOpts := []handler.TranslateHandlerOption{
		handler.WithLogger(logger),
		handler.WithConsole(cfg.Logging.Console),
	}
	routerCfg := handler.RouterConfig{
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		Logger:        logger,
		Console:       cfg.Logging.Console,
	}
	if collector != nil {
		handlerOpts = append(handlerOpts, handler.WithRecorder(collector))
		routerCfg.Recorder = collector
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = collector.Handler()
	}

	return handler.NewRouter(handler.NewTranslateHandler(translator, handlerOpts...), routerCfg), nil
}

// setupLogger creates a structured logger that redacts credentials.
// Unknown levels fall back to info, unknown formats to JSON.
func setupLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	var base slog.Handler
	if format == "text" {
		base = slog.NewTextHandler(w, opts)
	} else {
		base = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(security.NewRedactedHandler(base))

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
