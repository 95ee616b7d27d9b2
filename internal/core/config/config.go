package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal, and as the key reported by validation errors
// - default: default value to set if missing
// - validate: go-playground/validator rules checked after unmarshalling
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	// RedisURL enables operator overrides of the version payload when set.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Shopify holds the Admin API configuration.
	Shopify ShopifyConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy for Shopify calls.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Version holds the default app version-check payload.
	Version VersionConfig `mapstructure:",squash"`
}

// ShopifyConfig holds the credentials and paging settings for the Shopify Admin GraphQL API.
type ShopifyConfig struct {
	// ShopDomain is the shop host, e.g. "frova.myshopify.com".
	ShopDomain string `mapstructure:"SHOP_DOMAIN" validate:"required"`
	// AccessToken is the Admin API access token.
	AccessToken string `mapstructure:"ADMIN_API_TOKEN" validate:"required"`
	// APIVersion is the dated Admin API version.
	APIVersion string `mapstructure:"SHOPIFY_API_VERSION" default:"2024-07" validate:"required"`
	// PageSize is the number of orders requested per GraphQL page.
	PageSize int `mapstructure:"SHOPIFY_PAGE_SIZE" default:"50" validate:"min=1,max=250"`
	// TimeoutSeconds bounds a single upstream request.
	TimeoutSeconds int `mapstructure:"SHOPIFY_TIMEOUT_SECONDS" default:"15" validate:"min=1"`
	// ConnectTimeoutSeconds bounds establishing the upstream connection.
	ConnectTimeoutSeconds int `mapstructure:"SHOPIFY_CONNECT_TIMEOUT_SECONDS" default:"5" validate:"min=1"`
	// VerifyOnStart runs a health check query before the server starts.
	VerifyOnStart bool `mapstructure:"SHOPIFY_VERIFY_ON_START" default:"false"`
}

// Timeout returns the per-request upstream timeout.
func (c ShopifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConnectTimeout returns the upstream dial timeout.
func (c ShopifyConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// ProxyConfig holds the outbound HTTP proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// VersionConfig holds the version-check payload served to the driver app.
type VersionConfig struct {
	// LatestVersion is the newest published app version.
	LatestVersion string `mapstructure:"VERSION_LATEST" default:"1.11" validate:"required"`
	// UpdateType tells the app whether the update is optional or forced.
	UpdateType string `mapstructure:"VERSION_UPDATE_TYPE" default:"optional" validate:"oneof=optional force"`
	// AppStoreLink is where the app sends users to update.
	AppStoreLink string `mapstructure:"VERSION_APP_STORE_LINK" default:"https://google.com" validate:"url"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	trimStrings(reflect.ValueOf(&config).Elem())

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every mapstructure key to the environment and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// trimStrings strips surrounding whitespace so a blank value counts as missing.
func trimStrings(val reflect.Value) {
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		switch field.Kind() {
		case reflect.Struct:
			trimStrings(field)
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}

// validate runs the validate tags and reports the first failure by its environment key.
func validate(config *AppConfig) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" {
			return field.Name
		}
		return name
	})

	err := v.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fe := validationErrors[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("missing required configuration: %s", fe.Field())
	}
	if fe.Param() == "" {
		return fmt.Errorf("invalid configuration: %s must satisfy %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid configuration: %s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
}
