// httpclient/client.go
/* The httpclient package is the request facade for a store's REST API. A Client is built once from a
ClientConfig and then serves any number of concurrent GET, POST, PUT and DELETE calls. Every call translates
its search criteria (GET only), resolves the resource URL for the configured API generation, signs the request
with one-legged OAuth 1.0a and hands it to the HTTP collaborator. Responses come back exactly as the
collaborator returned them; status codes are not interpreted. */
package httpclient

import (
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-magento-client/apiintegrations/magento"
	"github.com/deploymenttheory/go-api-magento-client/authenticationhandler"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/deploymenttheory/go-api-magento-client/version"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_http_doer.go -package=mocks . HTTPDoer

// HTTPDoer sends a prepared request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the store REST API facade. It is safe for concurrent use; its configuration is never
// mutated after BuildClient returns.
type Client struct {
	config    ClientConfig
	http      HTTPDoer
	signer    *authenticationhandler.Signer
	handler   *magento.MagentoAPIHandler
	userAgent string
	plainHTTP bool

	Logger logger.Logger
}

// Option customises BuildClient.
type Option func(*buildOptions)

type buildOptions struct {
	httpClient     HTTPDoer
	logger         logger.Logger
	registerer     prometheus.Registerer
	translatorOpts []magento.TranslatorOption
	signerOpts     []authenticationhandler.SignerOption
}

// WithHTTPClient replaces the default *http.Client. Timeout, proxy, cookie and redirect settings in
// ClientConfig are then the caller's responsibility.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *buildOptions) {
		o.httpClient = doer
	}
}

// WithLogger supplies a logger instead of building one from LogLevel and LogOutputFormat.
func WithLogger(log logger.Logger) Option {
	return func(o *buildOptions) {
		o.logger = log
	}
}

// WithMetrics instruments the default transport and registers its collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *buildOptions) {
		o.registerer = reg
	}
}

// WithStrategy replaces the search criteria encoder used for tag.
func WithStrategy(tag magento.StrategyTag, strategy magento.Strategy) Option {
	return func(o *buildOptions) {
		o.translatorOpts = append(o.translatorOpts, magento.WithStrategy(tag, strategy))
	}
}

// WithSignerOptions passes options through to the OAuth signer.
func WithSignerOptions(opts ...authenticationhandler.SignerOption) Option {
	return func(o *buildOptions) {
		o.signerOpts = append(o.signerOpts, opts...)
	}
}

// BuildClient validates config and creates a Client. Configuration problems are reported before any
// logger, transport or signer is created, as errors matching errors.ErrConfiguration.
func BuildClient(config ClientConfig, opts ...Option) (*Client, error) {
	SetDefaultValuesClientConfig(&config)
	if err := validateClientConfig(config); err != nil {
		return nil, err
	}

	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
		log = logger.BuildLogger(parsedLogLevel, config.LogOutputFormat)
	}

	doer := o.httpClient
	if doer == nil {
		httpClient, err := newDefaultHTTPClient(config, o.registerer, log)
		if err != nil {
			return nil, err
		}
		doer = httpClient
	} else if o.registerer != nil {
		return nil, clienterrors.NewError("metrics require the default HTTP client").
			WithHint("wrap your own transport with metrics.NewInstrumentedTransport instead").
			Mark(clienterrors.ErrConfiguration)
	}

	generation := magento.GenerationFromVersion(config.Version)

	client := &Client{
		config: config,
		http:   doer,
		signer: authenticationhandler.NewSigner(authenticationhandler.Credentials{
			ConsumerKey:    config.ConsumerKey,
			ConsumerSecret: config.ConsumerSecret,
			AccessToken:    config.AccessToken,
			TokenSecret:    config.TokenSecret,
		}, o.signerOpts...),
		handler:   magento.NewMagentoAPIHandler(config.BaseURL, generation, config.EndpointType, log, o.translatorOpts...),
		userAgent: resolveUserAgent(config),
		plainHTTP: strings.HasPrefix(strings.ToLower(config.BaseURL), "http://"),
		Logger:    log,
	}

	log.Debug("New API client initialized",
		zap.String("Base URL", config.BaseURL),
		zap.Stringer("API Generation", generation),
		zap.String("Endpoint Type", config.EndpointType),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Bool("Cookie Jar Enabled", config.CookieJarEnabled),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Bool("Canonicalize Query", client.plainHTTP),
	)

	return client, nil
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Generation returns the API generation requests are built for.
func (c *Client) Generation() magento.Generation {
	return c.handler.Generation
}

func resolveUserAgent(config ClientConfig) string {
	switch {
	case config.OmitUserAgent:
		return ""
	case config.UserAgent != "":
		return config.UserAgent
	default:
		return version.GetUserAgentHeader()
	}
}
