package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ARTIFACTS_API_TOKEN
const EnvPrefix = "ARTIFACTS"

// Load loads the configuration from defaults, an optional config file, a
// .env file and ARTIFACTS_* environment variables, in increasing priority.
// overrides win over everything else; empty string values are ignored.
func Load(configPath string, overrides map[string]any) (*Config, error) {
	// .env is optional; real environment variables take precedence over it
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".artifactsmmo"))
		}
		v.AddConfigPath("/etc/artifactsmmo/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Without an explicit path the file is optional
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.url", "https://api.artifactsmmo.com")
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.page_size", 0)
	v.SetDefault("api.user_agent", "artifactsmmo-go")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report config keys rather than Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return v
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s %s", configKey(e), reason(e)))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// configKey turns "Config.api.token" into "api.token"
func configKey(e validator.FieldError) string {
	_, key, found := strings.Cut(e.Namespace(), ".")
	if !found {
		return e.Field()
	}
	return key
}

func reason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	default:
		return "is invalid"
	}
}
