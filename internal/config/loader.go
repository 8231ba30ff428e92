// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hpn/bizspeak-gateway/internal/domain"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "BIZSPEAK"

	// Standard AWS environment variables. They take priority over any file value.
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvRegion          = "AWS_REGION"
	EnvDefaultRegion   = "AWS_DEFAULT_REGION"
)

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. Standard AWS_* env vars for credentials and region
// 2. Environment variables (prefixed with BIZSPEAK_)
// 3. config.yaml
// 4. Default values
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bizspeak-gateway")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindAWSEnv(v); err != nil {
		return nil, &ConfigError{Op: "bind_env", Err: err}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintf(os.Stderr, "[CONFIG] Config file not found, using defaults and environment variables\n")
		} else {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
	} else {
		if v.IsSet("aws.secret_access_key") && os.Getenv(EnvSecretAccessKey) == "" {
			fmt.Fprintf(os.Stderr, "[SECURITY] Warning: AWS secret read from %s - prefer %s in production\n",
				v.ConfigFileUsed(), EnvSecretAccessKey)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	cfg.AWS.Region = strings.TrimSpace(cfg.AWS.Region)
	cfg.CORS.AllowedOrigin = strings.TrimSuffix(strings.TrimSpace(cfg.CORS.AllowedOrigin), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindAWSEnv maps the aws.* keys onto the standard AWS variable names so the
// service runs with the same environment as any other AWS tool.
func bindAWSEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"aws.access_key_id":     {EnvAccessKeyID},
		"aws.secret_access_key": {EnvSecretAccessKey},
		"aws.session_token":     {EnvSessionToken},
		"aws.region":            {EnvRegion, EnvDefaultRegion},
	}
	for key, envs := range bindings {
		// Prefixed names keep working as a fallback.
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		args := append([]string{key}, envs...)
		args = append(args, prefixed)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Endpoint override; empty means the SDK resolves the regional endpoint.
	v.SetDefault("aws.endpoint", "")

	// Model defaults
	params := domain.DefaultGenerationParams()
	v.SetDefault("model.id", params.ModelID)
	v.SetDefault("model.max_tokens", params.MaxTokens)
	v.SetDefault("model.temperature", params.Temperature)
	v.SetDefault("model.top_p", params.TopP)
	v.SetDefault("model.stop_sequences", params.StopSequences)
	v.SetDefault("model.prompt_template", "")

	// CORS defaults
	v.SetDefault("cors.allowed_origin", "http://localhost:5173")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.console", true)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "bizspeak")
}
