// Package domain contains the core business entities and value objects.
package domain

// TranslateRequest is the body accepted by POST /translate.
// Text is a pointer so a missing field can be told apart from an empty one in logs.
type TranslateRequest struct {
	Text *string `json:"text"`
}

// TranslateResponse is the success body of POST /translate.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Completion is the unwrapped result of a single model invocation.
type Completion struct {
	// Text is the raw completion as returned by the provider.
	Text string

	// StopReason is the provider's reason for ending generation.
	StopReason string
}
