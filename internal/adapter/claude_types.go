// Package adapter provides implementations for external AI provider integrations.
package adapter

// ============================================================================
// Claude Text Completion Types (Bedrock InvokeModel body)
// ============================================================================

// ClaudeTextRequest is the InvokeModel body for Anthropic text-completion models.
type ClaudeTextRequest struct {
	Prompt            string   `json:"prompt"`
	MaxTokensToSample int      `json:"max_tokens_to_sample"`
	Temperature       float64  `json:"temperature"`
	TopP              float64  `json:"top_p"`
	StopSequences     []string `json:"stop_sequences,omitempty"`
}

// ClaudeTextResponse is the InvokeModel response body for Anthropic text-completion models.
// Completion is a pointer so a missing field is distinguishable from an empty one.
type ClaudeTextResponse struct {
	Completion *string `json:"completion"`
	StopReason string  `json:"stop_reason,omitempty"`
	Stop       *string `json:"stop,omitempty"`
}
