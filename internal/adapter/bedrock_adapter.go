// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"

	"github.com/hpn/bizspeak-gateway/internal/domain"
)

const (
	// ProviderName identifies the Bedrock adapter in logs and metrics.
	ProviderName = "bedrock"

	contentTypeJSON = "application/json"
)

// RuntimeAPI is the subset of *bedrockruntime.Client the adapter calls.
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// InvokeObserver receives the outcome of every model invocation.
type InvokeObserver interface {
	ObserveInvocation(provider, model, outcome string, duration time.Duration)
}

// BedrockAdapter implements ModelProvider for Anthropic text-completion models on AWS Bedrock.
// It builds the Claude request envelope, invokes the model and unwraps the completion.
type BedrockAdapter struct {
	client   RuntimeAPI
	params   domain.GenerationParams
	logger   *slog.Logger
	observer InvokeObserver
}

// BedrockAdapterOption is a functional option for configuring BedrockAdapter.
type BedrockAdapterOption func(*BedrockAdapter)

// WithGenerationParams overrides the default model and sampling parameters.
func WithGenerationParams(params domain.GenerationParams) BedrockAdapterOption {
	return func(b *BedrockAdapter) {
		b.params = params
	}
}

// WithAdapterLogger sets a custom logger.
func WithAdapterLogger(logger *slog.Logger) BedrockAdapterOption {
	return func(b *BedrockAdapter) {
		b.logger = logger
	}
}

// WithInvokeObserver reports invocation outcomes, typically to metrics.
func WithInvokeObserver(observer InvokeObserver) BedrockAdapterOption {
	return func(b *BedrockAdapter) {
		b.observer = observer
	}
}

// NewBedrockAdapter creates a new BedrockAdapter around a runtime client.
func NewBedrockAdapter(client RuntimeAPI, opts ...BedrockAdapterOption) *BedrockAdapter {
	b := &BedrockAdapter{
		client: client,
		params: domain.DefaultGenerationParams(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Name returns the provider identifier.
func (b *BedrockAdapter) Name() string {
	return ProviderName
}

// ModelID returns the Bedrock model identifier.
func (b *BedrockAdapter) ModelID() string {
	return b.params.ModelID
}

// Complete invokes the model with the rendered prompt and returns the raw completion.
// A response without a completion field yields an empty Completion, not an error.
func (b *BedrockAdapter) Complete(ctx context.Context, prompt string) (domain.Completion, error) {
	body, err := json.Marshal(b.buildRequest(prompt))
	if err != nil {
		return domain.Completion{}, fmt.Errorf("failed to marshal claude request: %w", err)
	}

	b.logger.Debug("invoking model",
		slog.String("provider", ProviderName),
		slog.String("model", b.params.ModelID),
		slog.Int("body_bytes", len(body)),
	)

	start := time.Now()
	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.params.ModelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        body,
	})
	elapsed := time.Since(start)
	if err != nil {
		classified := classifyError(err)
		b.observe(outcomeOf(classified), elapsed)
		return domain.Completion{}, classified
	}

	var resp ClaudeTextResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		b.observe("decode_error", elapsed)
		return domain.Completion{}, fmt.Errorf("failed to unmarshal claude response: %w", err)
	}
	b.observe("success", elapsed)

	completion := domain.Completion{StopReason: resp.StopReason}
	if resp.Completion != nil {
		completion.Text = *resp.Completion
	}
	return completion, nil
}

// buildRequest packages the prompt with the configured generation parameters.
func (b *BedrockAdapter) buildRequest(prompt string) ClaudeTextRequest {
	return ClaudeTextRequest{
		Prompt:            prompt,
		MaxTokensToSample: b.params.MaxTokens,
		Temperature:       b.params.Temperature,
		TopP:              b.params.TopP,
		StopSequences:     b.params.StopSequences,
	}
}

func (b *BedrockAdapter) observe(outcome string, d time.Duration) {
	if b.observer != nil {
		b.observer.ObserveInvocation(ProviderName, b.params.ModelID, outcome, d)
	}
}

// classifyError converts SDK API errors into provider gateway errors.
// Anything that is not an API error (transport, cancellation) is returned wrapped as is.
func classifyError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return domain.NewProviderError(apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("failed to invoke model: %w", err)
}

// outcomeOf returns the metric outcome label for a classified error.
func outcomeOf(err error) string {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) && gwErr.Kind == domain.KindProvider {
		return gwErr.Code.String()
	}
	return "transport_error"
}
