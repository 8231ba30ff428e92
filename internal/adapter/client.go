// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// ClientConfig carries what is needed to build a Bedrock runtime client.
type ClientConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	// Endpoint overrides the resolved Bedrock runtime endpoint when set.
	Endpoint string

	// HTTPClient replaces the SDK's default transport when set.
	HTTPClient *http.Client
}

// NewRuntimeClient builds a Bedrock runtime client from static credentials.
// The SDK retryer is replaced with a no-op: every call reaches the provider once.
func NewRuntimeClient(ctx context.Context, cfg ClientConfig) (*bedrockruntime.Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, errors.New("aws credentials are required")
	}
	if cfg.Region == "" {
		return nil, errors.New("aws region is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken,
		)),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(cfg.HTTPClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewBedrockHandle builds the runtime client and wraps it in a Handle. A
// construction failure is kept in the Handle rather than returned, so the
// server can still start and answer the liveness probe.
func NewBedrockHandle(ctx context.Context, cfg ClientConfig, opts ...BedrockAdapterOption) Handle {
	client, err := NewRuntimeClient(ctx, cfg)
	if err != nil {
		return Failed(err)
	}
	return NewHandle(NewBedrockAdapter(client, opts...), nil)
}
