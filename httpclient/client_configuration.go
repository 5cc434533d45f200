// httpclient/client_configuration.go
// Description: This file contains the client configuration, its defaults and loaders for configuration
// files and environment variables.
package httpclient

import (
	"time"

	"github.com/caarlos0/env"
	"github.com/deploymenttheory/go-api-magento-client/apiintegrations/magento"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = "pretty"
	DefaultEndpointType          = magento.DefaultEndpointType
	DefaultCustomTimeout         = 30 * time.Second
	DefaultMaxRedirects          = 5
)

// ClientConfig holds everything needed to build a Client. It is copied into the client at construction.
type ClientConfig struct {
	// Store
	BaseURL        string `mapstructure:"url" env:"MAGENTO_URL"`                         // Store root URL, http or https.
	ConsumerKey    string `mapstructure:"consumer_key" env:"MAGENTO_CONSUMER_KEY"`       // Integration consumer key.
	ConsumerSecret string `mapstructure:"consumer_secret" env:"MAGENTO_CONSUMER_SECRET"` // Integration consumer secret.
	AccessToken    string `mapstructure:"access_token" env:"MAGENTO_ACCESS_TOKEN"`       // Integration access token.
	TokenSecret    string `mapstructure:"token_secret" env:"MAGENTO_TOKEN_SECRET"`       // Integration access token secret.
	Version        int    `mapstructure:"version" env:"MAGENTO_VERSION"`                 // Store major version: 1 is legacy, 0 or 2+ is current.
	EndpointType   string `mapstructure:"type" env:"MAGENTO_TYPE"`                       // Namespace segment for current stores, e.g. V1 or a store code.

	// Log
	LogLevel          string `mapstructure:"log_level" env:"MAGENTO_LOG_LEVEL"`
	LogOutputFormat   string `mapstructure:"log_output_format" env:"MAGENTO_LOG_OUTPUT_FORMAT"` // "json" or "pretty"
	HideSensitiveData bool   `mapstructure:"hide_sensitive_data" env:"MAGENTO_HIDE_SENSITIVE_DATA"`

	// Transport pass-through
	CustomTimeout    time.Duration `mapstructure:"timeout" env:"MAGENTO_TIMEOUT"`
	FollowRedirects  bool          `mapstructure:"follow_redirects" env:"MAGENTO_FOLLOW_REDIRECTS"`
	MaxRedirects     int           `mapstructure:"max_redirects" env:"MAGENTO_MAX_REDIRECTS"`
	ProxyURL         string        `mapstructure:"proxy_url" env:"MAGENTO_PROXY_URL"`
	CookieJarEnabled bool          `mapstructure:"cookie_jar" env:"MAGENTO_COOKIE_JAR"`

	// Headers
	OmitUserAgent bool   `mapstructure:"omit_user_agent" env:"MAGENTO_OMIT_USER_AGENT"`
	UserAgent     string `mapstructure:"user_agent" env:"MAGENTO_USER_AGENT"` // Overrides the default User-Agent.
}

// LoadConfigFromFile loads http client configuration settings from a JSON, YAML or TOML file.
// The format is taken from the file extension.
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("could not read configuration file").
			Mark(clienterrors.ErrConfiguration)
	}

	var config ClientConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("could not decode configuration file").
			Mark(clienterrors.ErrConfiguration)
	}

	SetDefaultValuesClientConfig(&config)
	return &config, nil
}

// LoadConfigFromEnv loads HTTP client configuration settings from MAGENTO_* environment variables.
// Unset variables fall back to the defaults defined in the constants above.
func LoadConfigFromEnv() (*ClientConfig, error) {
	var config ClientConfig
	if err := env.Parse(&config); err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("could not parse environment").
			Mark(clienterrors.ErrConfiguration)
	}

	SetDefaultValuesClientConfig(&config)
	return &config, nil
}

// SetDefaultValuesClientConfig fills zero-valued optional fields with their defaults.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	setDefaultString(&config.EndpointType, DefaultEndpointType)
	setDefaultString(&config.LogLevel, DefaultLogLevelString)
	setDefaultString(&config.LogOutputFormat, DefaultLogOutputFormatString)
	setDefaultDuration(&config.CustomTimeout, DefaultCustomTimeout)
	setDefaultInt(&config.MaxRedirects, DefaultMaxRedirects)
}

func setDefaultString(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}

func setDefaultInt(field *int, defaultValue int) {
	if *field == 0 {
		*field = defaultValue
	}
}

func setDefaultDuration(field *time.Duration, defaultValue time.Duration) {
	if *field == 0 {
		*field = defaultValue
	}
}
