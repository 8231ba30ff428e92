// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import "net/http"

// ProviderCode is the closed set of provider failure classes the gateway
// distinguishes. Anything the provider reports outside this set is Unknown.
type ProviderCode int

const (
	// ProviderUnknown covers every provider client error without a dedicated mapping.
	ProviderUnknown ProviderCode = iota

	// ProviderAccessDenied means the caller lacks invoke permission or model access is not enabled.
	ProviderAccessDenied

	// ProviderThrottling means the provider rate limit was exceeded.
	ProviderThrottling

	// ProviderModelNotFound means the model identifier is invalid or not available in the region.
	ProviderModelNotFound
)

// ParseProviderCode maps a raw provider error code onto the closed variant.
func ParseProviderCode(code string) ProviderCode {
	switch code {
	case "AccessDeniedException":
		return ProviderAccessDenied
	case "ThrottlingException":
		return ProviderThrottling
	case "ModelNotFoundException", "ResourceNotFoundException":
		return ProviderModelNotFound
	default:
		return ProviderUnknown
	}
}

// String returns the short name used in logs and metric labels.
func (c ProviderCode) String() string {
	switch c {
	case ProviderAccessDenied:
		return "access_denied"
	case ProviderThrottling:
		return "throttling"
	case ProviderModelNotFound:
		return "model_not_found"
	case ProviderUnknown:
		return "unknown"
	}
	return "unknown"
}

// HTTPStatus returns the status code a provider failure of this class is reported with.
func (c ProviderCode) HTTPStatus() int {
	switch c {
	case ProviderAccessDenied:
		return http.StatusForbidden
	case ProviderThrottling:
		return http.StatusTooManyRequests
	case ProviderModelNotFound:
		return http.StatusNotFound
	case ProviderUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing description of a provider failure of this class.
func (c ProviderCode) Message() string {
	switch c {
	case ProviderAccessDenied:
		return "Access denied to the model. Check IAM permissions and that model access is enabled."
	case ProviderThrottling:
		return "Rate limit exceeded. Please try again later."
	case ProviderModelNotFound:
		return "Model not found. Check the model ID and region."
	case ProviderUnknown:
		return "An error occurred while communicating with the model provider."
	}
	return "An error occurred while communicating with the model provider."
}

// GenerationParams holds the model identifier and sampling parameters
// packaged with every prompt.
type GenerationParams struct {
	// ModelID is the provider model identifier.
	ModelID string `json:"model_id" mapstructure:"id"`

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"max_tokens" mapstructure:"max_tokens"`

	// Temperature controls randomness; lower favors determinism.
	Temperature float64 `json:"temperature" mapstructure:"temperature"`

	// TopP is the nucleus-sampling threshold.
	TopP float64 `json:"top_p" mapstructure:"top_p"`

	// StopSequences halt generation when produced.
	StopSequences []string `json:"stop_sequences" mapstructure:"stop_sequences"`
}

// Default generation parameters.
const (
	DefaultModelID     = "anthropic.claude-v2"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.5
	DefaultTopP        = 0.9

	// HumanTurnMarker starts a user turn in the Claude text format. It doubles as
	// the stop sequence so the model cannot continue a simulated dialogue.
	HumanTurnMarker = "\n\nHuman:"

	// AssistantTurnMarker starts the model's turn in the Claude text format.
	AssistantTurnMarker = "\n\nAssistant:"
)

// DefaultGenerationParams returns the parameters used when nothing is configured.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		ModelID:       DefaultModelID,
		MaxTokens:     DefaultMaxTokens,
		Temperature:   DefaultTemperature,
		TopP:          DefaultTopP,
		StopSequences: []string{HumanTurnMarker},
	}
}

// IsValid checks if the parameters are usable for an invocation.
func (p GenerationParams) IsValid() bool {
	return p.ModelID != "" && p.MaxTokens > 0 &&
		p.Temperature >= 0 && p.Temperature <= 1 &&
		p.TopP > 0 && p.TopP <= 1
}
