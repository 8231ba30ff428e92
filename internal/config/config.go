// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/hpn/bizspeak-gateway/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// AWS credentials and region for the model client
	AWS AWSConfig `json:"aws" mapstructure:"aws"`

	// Model invocation parameters
	Model ModelConfig `json:"model" mapstructure:"model"`

	// CORS configuration
	CORS CORSConfig `json:"cors" mapstructure:"cors"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics configuration
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// AWSConfig holds the credentials and region used to build the Bedrock client.
type AWSConfig struct {
	// Region is the AWS region hosting the model.
	Region string `json:"region" mapstructure:"region"`

	// AccessKeyID is the AWS access key.
	AccessKeyID string `json:"-" mapstructure:"access_key_id"`

	// SecretAccessKey is the AWS secret key.
	SecretAccessKey string `json:"-" mapstructure:"secret_access_key"`

	// SessionToken is optional, for temporary credentials.
	SessionToken string `json:"-" mapstructure:"session_token"`

	// Endpoint overrides the Bedrock runtime endpoint (local stubs, VPC endpoints).
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
}

// ModelConfig holds the model identifier, generation parameters and prompt.
type ModelConfig struct {
	domain.GenerationParams `mapstructure:",squash"`

	// PromptTemplate overrides the built-in instruction template (text/template, field .Text).
	PromptTemplate string `json:"prompt_template" mapstructure:"prompt_template"`
}

// CORSConfig holds cross-origin configuration for the translate route.
type CORSConfig struct {
	// AllowedOrigin is the single frontend origin allowed to call /translate.
	AllowedOrigin string `json:"allowed_origin" mapstructure:"allowed_origin"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`

	// Console enables the colorized console output next to structured logs.
	Console bool `json:"console" mapstructure:"console"`
}

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	// Enabled mounts the metrics endpoint.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Path is the route the metrics are served on.
	Path string `json:"path" mapstructure:"path"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace" mapstructure:"namespace"`
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance.
// It initializes the configuration on first call using the default config path.
// Returns an error if configuration loading fails.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance with a custom config path.
// This should be used when you need to specify a non-default configuration file path.
// Returns an error if configuration loading fails.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// ResetConfig resets the singleton instance.
// This is primarily used for testing purposes.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate validates the configuration and returns an error if required fields are missing.
func (c *Configuration) Validate() error {
	var validationErrors []string

	// Validate server configuration
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	// AWS credentials are required: the process never serves without them
	for _, missing := range c.AWS.missingKeys() {
		validationErrors = append(validationErrors, (&MissingKeyError{Key: missing}).Error())
	}

	if c.AWS.Endpoint != "" {
		if u, err := url.Parse(c.AWS.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("aws.endpoint '%s' is not a valid URL", c.AWS.Endpoint))
		}
	}

	// Validate model configuration
	if c.Model.ModelID == "" {
		validationErrors = append(validationErrors, "model.id is required")
	}
	if c.Model.MaxTokens <= 0 {
		validationErrors = append(validationErrors, "model.max_tokens must be positive")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 1 {
		validationErrors = append(validationErrors, "model.temperature must be between 0 and 1")
	}
	if c.Model.TopP <= 0 || c.Model.TopP > 1 {
		validationErrors = append(validationErrors, "model.top_p must be greater than 0 and at most 1")
	}

	// Validate CORS configuration
	if c.CORS.AllowedOrigin == "" {
		validationErrors = append(validationErrors, "cors.allowed_origin is required")
	}

	// Validate logging configuration
	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}
	if c.Logging.Format != "" && c.Logging.Format != "json" && c.Logging.Format != "text" {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format '%s' is invalid, must be one of: json, text",
			c.Logging.Format,
		))
	}

	if c.Metrics.Enabled && (c.Metrics.Path == "" || c.Metrics.Path[0] != '/') {
		validationErrors = append(validationErrors, "metrics.path must start with '/'")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// missingKeys lists the required AWS settings that are empty.
func (a AWSConfig) missingKeys() []string {
	var missing []string
	if a.AccessKeyID == "" {
		missing = append(missing, EnvAccessKeyID)
	}
	if a.SecretAccessKey == "" {
		missing = append(missing, EnvSecretAccessKey)
	}
	if a.Region == "" {
		missing = append(missing, EnvRegion)
	}
	return missing
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// Address returns the host:port the server listens on.
func (c *Configuration) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
