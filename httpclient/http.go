// httpclient/http.go
package httpclient

import (
	"net/http"

	"github.com/deploymenttheory/go-api-magento-client/cookiejar"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/deploymenttheory/go-api-magento-client/metrics"
	"github.com/deploymenttheory/go-api-magento-client/proxy"
	"github.com/deploymenttheory/go-api-magento-client/redirecthandler"
	"github.com/prometheus/client_golang/prometheus"
)

// newDefaultHTTPClient assembles the *http.Client used when the caller does not inject one.
// Order matters: the proxy replaces the transport, metrics then wrap whatever transport is in place.
func newDefaultHTTPClient(config ClientConfig, reg prometheus.Registerer, log logger.Logger) (*http.Client, error) {
	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	if err := proxy.InitializeProxy(httpClient, config.ProxyURL, log); err != nil {
		return nil, err
	}

	if err := cookiejar.SetupCookieJar(httpClient, config.CookieJarEnabled, log); err != nil {
		return nil, err
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		return nil, clienterrors.WithError(err).Mark(clienterrors.ErrConfiguration)
	}

	if reg != nil {
		transport, err := metrics.NewInstrumentedTransport(httpClient.Transport, reg)
		if err != nil {
			return nil, clienterrors.WithError(err).Mark(clienterrors.ErrConfiguration)
		}
		httpClient.Transport = transport
	}

	return httpClient, nil
}
