// Package adapter provides implementations for external AI provider integrations.
// It uses the Adapter pattern to abstract provider-specific APIs behind a common interface.
package adapter

import (
	"context"
	"errors"

	"github.com/hpn/bizspeak-gateway/internal/domain"
)

// ModelProvider defines the interface for model provider adapters.
// All provider implementations must satisfy this interface.
type ModelProvider interface {
	// Complete sends a fully rendered prompt to the model and returns the
	// unwrapped completion. Provider rejections are returned as *domain.GatewayError.
	Complete(ctx context.Context, prompt string) (domain.Completion, error)

	// Name returns the provider's identifier string.
	Name() string

	// ModelID returns the model the provider invokes.
	ModelID() string
}

// ErrNoProvider is the initialization error of a Handle built without a provider.
var ErrNoProvider = errors.New("model provider was not initialized")

// Handle is the process-lifetime reference to the model provider. It holds
// either a ready provider or the error that prevented building one, so
// request handlers check availability instead of testing a nil global.
type Handle struct {
	provider ModelProvider
	initErr  error
}

// NewHandle records the outcome of provider construction. A nil provider
// without an error is treated as ErrNoProvider.
func NewHandle(provider ModelProvider, initErr error) Handle {
	if initErr == nil && provider == nil {
		initErr = ErrNoProvider
	}
	if initErr != nil {
		return Handle{initErr: initErr}
	}
	return Handle{provider: provider}
}

// Failed records a provider construction failure.
func Failed(err error) Handle {
	return NewHandle(nil, err)
}

// Provider returns the provider, or the initialization error if there is none.
func (h Handle) Provider() (ModelProvider, error) {
	if h.provider == nil {
		if h.initErr == nil {
			return nil, ErrNoProvider
		}
		return nil, h.initErr
	}
	return h.provider, nil
}

// Available reports whether a provider is ready to serve requests.
func (h Handle) Available() bool {
	return h.provider != nil
}
