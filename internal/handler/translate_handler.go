// Package handler provides HTTP handlers for the translation gateway.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/bizspeak-gateway/internal/domain"
	"github.com/hpn/bizspeak-gateway/internal/ui"
)

// HealthMessage is returned by the liveness probe.
const HealthMessage = "Backend is running"

// Translator is the gateway operation the handler exposes over HTTP.
type Translator interface {
	Translate(ctx context.Context, input string) (string, error)

	// Ready returns the client initialization failure, or nil.
	Ready() error
}

// Recorder receives per-request measurements. *metrics.Collector satisfies it.
type Recorder interface {
	RecordRequest(route string, status int, duration time.Duration)
	RecordError(kind string)
	RecordTokens(input, output int)
}

// TranslateHandler serves the liveness probe and the translate endpoint.
type TranslateHandler struct {
	translator Translator
	logger     *slog.Logger
	recorder   Recorder
	console    bool
}

// TranslateHandlerOption is a functional option for configuring TranslateHandler.
type TranslateHandlerOption func(*TranslateHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) TranslateHandlerOption {
	return func(h *TranslateHandler) {
		h.logger = logger
	}
}

// WithRecorder reports errors and token estimates to recorder.
func WithRecorder(recorder Recorder) TranslateHandlerOption {
	return func(h *TranslateHandler) {
		h.recorder = recorder
	}
}

// WithConsole enables colorized console lines for provider errors and usage.
func WithConsole(enabled bool) TranslateHandlerOption {
	return func(h *TranslateHandler) {
		h.console = enabled
	}
}

// NewTranslateHandler creates a new TranslateHandler.
func NewTranslateHandler(translator Translator, opts ...TranslateHandlerOption) *TranslateHandler {
	h := &TranslateHandler{
		translator: translator,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HandleTranslate handles POST /translate.
func (h *TranslateHandler) HandleTranslate(c *gin.Context) {
	requestID := c.GetString(RequestIDKey)
	logger := h.logger.With(slog.String("request_id", requestID))

	logger.Info("translation request received",
		slog.String("client_ip", c.ClientIP()),
		slog.Int64("content_length", c.Request.ContentLength),
	)

	// An uninitialized client fails every request, whatever the body holds.
	if err := h.translator.Ready(); err != nil {
		h.sendError(c, logger, domain.AsGatewayError(err))
		return
	}

	var req domain.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", slog.String("error", err.Error()))
		h.sendError(c, logger, domain.NewInvalidInputError())
		return
	}

	input := ""
	if req.Text != nil {
		input = *req.Text
	} else {
		logger.Warn("request body has no text field")
	}

	translated, err := h.translator.Translate(c.Request.Context(), input)
	if err != nil {
		h.sendError(c, logger, domain.AsGatewayError(err))
		return
	}

	usage := EstimateUsage(input, translated)
	c.Set(InputTokensKey, usage.InputTokens)
	c.Set(OutputTokensKey, usage.OutputTokens)
	if h.recorder != nil {
		h.recorder.RecordTokens(usage.InputTokens, usage.OutputTokens)
	}
	if h.console {
		ui.PrintTokens(usage.InputTokens, usage.OutputTokens)
	}

	logger.Info("translation returned",
		slog.Int("input_tokens_estimate", usage.InputTokens),
		slog.Int("output_tokens_estimate", usage.OutputTokens),
	)

	c.JSON(http.StatusOK, domain.TranslateResponse{TranslatedText: translated})
}

// HandleHealth handles GET /
// The probe reports process liveness only; it never consults the model client.
func (h *TranslateHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:  "ok",
		Message: HealthMessage,
	})
}

// sendError writes the normalized error body for err.
func (h *TranslateHandler) sendError(c *gin.Context, logger *slog.Logger, err *domain.GatewayError) {
	status := err.HTTPStatus()

	logger.Error("translation failed",
		slog.String("kind", err.Kind.String()),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	if h.recorder != nil {
		h.recorder.RecordError(err.Kind.String())
	}
	if h.console {
		switch err.Kind {
		case domain.KindProvider:
			ui.PrintProviderError(err.Code.String(), status)
		case domain.KindInvalidInput:
			// client mistakes are not worth a console line
		default:
			ui.PrintGatewayInfo("translation failed: " + err.Kind.String())
		}
	}

	c.Set(ErrorKindKey, err.Kind.String())
	c.JSON(status, domain.ErrorResponse{Error: err.Message()})
}
