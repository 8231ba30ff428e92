// Package handler provides HTTP handlers for the translation gateway.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hpn/bizspeak-gateway/internal/domain"
	"github.com/hpn/bizspeak-gateway/internal/ui"
)

// Context keys shared between handlers and middleware.
const (
	RequestIDKey    = "request_id"
	ErrorKindKey    = "error_kind"
	InputTokensKey  = "input_tokens"
	OutputTokensKey = "output_tokens"

	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
)

// CORSMiddleware returns a middleware that allows exactly one browser origin.
// Requests from other origins are served without CORS headers, so browsers block them.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Header("Vary", "Origin")

		if origin != "" && origin == allowedOrigin {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			c.Header("Access-Control-Expose-Headers", RequestIDHeader)
			c.Header("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every request with an id, reusing a well-formed
// incoming X-Request-ID and minting a UUID otherwise.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// LoggingMiddleware returns a middleware that logs request details in JSON format.
// With console enabled it also prints a colorized request line.
func LoggingMiddleware(logger *slog.Logger, console bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		requestID := c.GetString(RequestIDKey)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		if kind := c.GetString(ErrorKindKey); kind != "" {
			attrs = append(attrs, slog.String("error_kind", kind))
		}

		logger.Info("request completed", attrs...)

		if console {
			ui.PrintRequest(c.Request.Method, path, c.Writer.Status(), latency, requestID)
		}
	}
}

// MetricsMiddleware records status and latency for every routed request.
func MetricsMiddleware(recorder Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		recorder.RecordRequest(c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// RecoveryMiddleware returns a middleware that recovers from panics.
// It logs the error and returns a 500 response in the gateway's error format.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", c.GetString(RequestIDKey)),
				)

				c.Set(ErrorKindKey, domain.KindUnexpected.String())
				c.AbortWithStatusJSON(http.StatusInternalServerError, domain.ErrorResponse{
					Error: domain.MsgUnexpected,
				})
			}
		}()

		c.Next()
	}
}
