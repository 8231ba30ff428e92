// Package gateway implements the translation gateway: it validates input,
// renders the prompt, invokes the model and unwraps the completion.
package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hpn/bizspeak-gateway/internal/adapter"
	"github.com/hpn/bizspeak-gateway/internal/domain"
)

// Translator rewrites technical text into business language through a model provider.
// It is safe for concurrent use; all fields are read-only after construction.
type Translator struct {
	handle   adapter.Handle
	renderer *PromptRenderer
	logger   *slog.Logger
}

// TranslatorOption is a functional option for configuring Translator.
type TranslatorOption func(*Translator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithRenderer replaces the default prompt renderer.
func WithRenderer(renderer *PromptRenderer) TranslatorOption {
	return func(t *Translator) {
		t.renderer = renderer
	}
}

// NewTranslator creates a Translator over a provider handle.
func NewTranslator(handle adapter.Handle, opts ...TranslatorOption) *Translator {
	t := &Translator{
		handle: handle,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.renderer == nil {
		// The built-in template is known to parse.
		t.renderer, _ = NewPromptRenderer("")
	}

	return t
}

// Ready returns a ClientUnavailable error when the provider failed to initialize.
func (t *Translator) Ready() error {
	if _, err := t.handle.Provider(); err != nil {
		return domain.NewClientUnavailableError(err)
	}
	return nil
}

// Translate returns the business-language rewrite of input. Every failure is a
// *domain.GatewayError.
func (t *Translator) Translate(ctx context.Context, input string) (string, error) {
	provider, err := t.handle.Provider()
	if err != nil {
		t.logger.Error("model client unavailable", slog.String("error", err.Error()))
		return "", domain.NewClientUnavailableError(err)
	}

	text := strings.TrimSpace(input)
	if text == "" {
		t.logger.Warn("rejected empty text")
		return "", domain.NewInvalidInputError()
	}

	prompt, err := t.renderer.Render(text)
	if err != nil {
		t.logger.Error("prompt rendering failed", slog.String("error", err.Error()))
		return "", domain.NewUnexpectedError(err)
	}

	t.logger.Info("invoking model",
		slog.String("provider", provider.Name()),
		slog.String("model", provider.ModelID()),
		slog.Int("text_length", len(text)),
	)

	completion, err := provider.Complete(ctx, prompt)
	if err != nil {
		gwErr := domain.AsGatewayError(err)
		t.logError(gwErr)
		return "", gwErr
	}

	result := strings.TrimSpace(completion.Text)
	if result == "" {
		t.logger.Error("model returned no completion",
			slog.String("model", provider.ModelID()),
			slog.String("stop_reason", completion.StopReason),
		)
		return "", domain.NewEmptyCompletionError()
	}

	t.logger.Info("translation succeeded",
		slog.String("model", provider.ModelID()),
		slog.String("stop_reason", completion.StopReason),
		slog.Int("result_length", len(result)),
	)

	return result, nil
}

// logError writes one log line per error class.
func (t *Translator) logError(err *domain.GatewayError) {
	switch err.Kind {
	case domain.KindProvider:
		t.logger.Error("provider rejected invocation",
			slog.String("code", err.Code.String()),
			slog.String("provider_code", err.RawCode),
			slog.Int("status", err.HTTPStatus()),
			slog.String("error", err.Error()),
		)
	default:
		t.logger.Error("model invocation failed",
			slog.String("kind", err.Kind.String()),
			slog.String("error", err.Error()),
		)
	}
}
