// Package domain contains the core business entities and value objects.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a per-request gateway failure.
type ErrorKind int

const (
	// KindUnexpected is the catch-all for failures no other kind describes.
	KindUnexpected ErrorKind = iota

	// KindInvalidInput means the request text was missing or blank.
	KindInvalidInput

	// KindClientUnavailable means the model client failed to initialize at startup.
	KindClientUnavailable

	// KindProvider means the provider rejected the invocation.
	KindProvider

	// KindEmptyCompletion means the provider answered without completion text.
	KindEmptyCompletion
)

// String returns the short name used in logs and metric labels.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindClientUnavailable:
		return "client_unavailable"
	case KindProvider:
		return "provider_error"
	case KindEmptyCompletion:
		return "empty_completion"
	case KindUnexpected:
		return "unexpected"
	}
	return "unexpected"
}

// User-facing messages.
const (
	MsgInvalidInput      = "Missing or empty 'text' field in request."
	MsgClientUnavailable = "Server configuration error: model client is not available."
	MsgEmptyCompletion   = "Failed to get translation from model."
	MsgUnexpected        = "An unexpected error occurred."
)

// ErrEmptyText is the cause attached to InvalidInput errors.
var ErrEmptyText = errors.New("text is missing or empty")

// GatewayError is the single error type the translation gateway returns.
type GatewayError struct {
	Kind ErrorKind

	// Code is only meaningful when Kind is KindProvider.
	Code ProviderCode

	// RawCode is the error code reported by the provider, if any.
	RawCode string

	Err error
}

func (e *GatewayError) Error() string {
	if e.Kind == KindProvider {
		if e.RawCode != "" {
			return fmt.Sprintf("%s (%s): %v", e.Kind, e.RawCode, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status for this error.
func (e *GatewayError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindProvider:
		return e.Code.HTTPStatus()
	case KindClientUnavailable, KindEmptyCompletion, KindUnexpected:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Message returns the text placed in the response body.
func (e *GatewayError) Message() string {
	switch e.Kind {
	case KindInvalidInput:
		return MsgInvalidInput
	case KindClientUnavailable:
		return MsgClientUnavailable
	case KindProvider:
		return e.Code.Message()
	case KindEmptyCompletion:
		return MsgEmptyCompletion
	case KindUnexpected:
		return MsgUnexpected
	}
	return MsgUnexpected
}

// NewInvalidInputError reports blank or missing request text.
func NewInvalidInputError() *GatewayError {
	return &GatewayError{Kind: KindInvalidInput, Err: ErrEmptyText}
}

// NewClientUnavailableError reports that the model client never became available.
func NewClientUnavailableError(cause error) *GatewayError {
	return &GatewayError{Kind: KindClientUnavailable, Err: cause}
}

// NewProviderError reports a provider client failure with its raw code.
func NewProviderError(rawCode string, cause error) *GatewayError {
	return &GatewayError{
		Kind:    KindProvider,
		Code:    ParseProviderCode(rawCode),
		RawCode: rawCode,
		Err:     cause,
	}
}

// NewEmptyCompletionError reports a response without completion text.
func NewEmptyCompletionError() *GatewayError {
	return &GatewayError{Kind: KindEmptyCompletion, Err: errors.New("model returned no completion")}
}

// NewUnexpectedError wraps any failure that has no dedicated kind.
func NewUnexpectedError(cause error) *GatewayError {
	return &GatewayError{Kind: KindUnexpected, Err: cause}
}

// AsGatewayError extracts a *GatewayError from err, wrapping anything else as unexpected.
func AsGatewayError(err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return NewUnexpectedError(err)
}
