// Package config resolves the translator tools' configuration from explicit
// values and the environment.
package config

import (
	"fmt"

	"github.com/pricofy/azure-translator/internal/translator"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	EnvKey              = "AZURE_TRANSLATOR_KEY"
	EnvRegion           = "AZURE_TRANSLATOR_REGION"
	EnvEndpoint         = "AZURE_TRANSLATOR_ENDPOINT"
	EnvTimeout          = "AZURE_TRANSLATOR_TIMEOUT"
	EnvDefaultTarget    = "TRANSLATE_DEFAULT_TARGET"
	EnvDocumentMaxChars = "DOCUMENT_MAX_CHARS"
	EnvLogLevel         = "LOG_LEVEL"
	EnvEnvironment      = "ENVIRONMENT"
)

// DefaultDocumentMaxChars matches the service's per-request character limit.
const DefaultDocumentMaxChars = 50000

// Credentials are explicit values that take precedence over the environment.
// Blank fields fall through to the environment and then to defaults.
type Credentials struct {
	Key      string
	Region   string
	Endpoint string
}

// Config is the resolved configuration. It is not modified after Load.
type Config struct {
	Translator       translator.Config
	DefaultTarget    string
	DocumentMaxChars int
	LogLevel         string
	Environment      string
}

// Load resolves configuration once: explicit values, then environment
// variables, then defaults. A missing subscription key is a configuration error.
func Load(explicit Credentials) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(EnvEndpoint, translator.DefaultEndpoint)
	v.SetDefault(EnvTimeout, translator.DefaultTimeout.String())
	v.SetDefault(EnvDefaultTarget, "fr")
	v.SetDefault(EnvDocumentMaxChars, DefaultDocumentMaxChars)
	v.SetDefault(EnvLogLevel, "info")
	v.SetDefault(EnvEnvironment, "dev")

	cfg := &Config{
		Translator: translator.Config{
			Key:      firstNonEmpty(explicit.Key, v.GetString(EnvKey)),
			Region:   firstNonEmpty(explicit.Region, v.GetString(EnvRegion)),
			Endpoint: firstNonEmpty(explicit.Endpoint, v.GetString(EnvEndpoint)),
			Timeout:  v.GetDuration(EnvTimeout),
		},
		DefaultTarget:    v.GetString(EnvDefaultTarget),
		DocumentMaxChars: v.GetInt(EnvDocumentMaxChars),
		LogLevel:         v.GetString(EnvLogLevel),
		Environment:      v.GetString(EnvEnvironment),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Translator.Key == "" {
		return fmt.Errorf("%w: %s is required", translator.ErrConfiguration, EnvKey)
	}
	if cfg.Translator.Endpoint == "" {
		return fmt.Errorf("%w: %s is required", translator.ErrConfiguration, EnvEndpoint)
	}
	if cfg.Translator.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be a positive duration", translator.ErrConfiguration, EnvTimeout)
	}
	if cfg.DocumentMaxChars <= 0 {
		return fmt.Errorf("%w: %s must be positive", translator.ErrConfiguration, EnvDocumentMaxChars)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
