// httpclient/config_validation.go
package httpclient

import (
	"net/url"
	"strings"

	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/samber/lo"
)

// validateClientConfig checks config after defaults have been applied. Every error is marked
// with errors.ErrConfiguration.
func validateClientConfig(config ClientConfig) error {
	required := []struct {
		name  string
		value string
	}{
		{"url", config.BaseURL},
		{"consumerKey", config.ConsumerKey},
		{"consumerSecret", config.ConsumerSecret},
		{"accessToken", config.AccessToken},
		{"tokenSecret", config.TokenSecret},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return clienterrors.NewErrorf("%s is required", field.name).
				WithHint("consumer and access token credentials are shown on the store's integration page").
				Mark(clienterrors.ErrConfiguration)
		}
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil || baseURL.Host == "" || !lo.Contains([]string{"http", "https"}, strings.ToLower(baseURL.Scheme)) {
		return clienterrors.NewErrorf("url %q must be an absolute http or https URL", config.BaseURL).
			Mark(clienterrors.ErrConfiguration)
	}
	if baseURL.RawQuery != "" || baseURL.Fragment != "" {
		return clienterrors.NewErrorf("url %q must not carry a query or fragment", config.BaseURL).
			Mark(clienterrors.ErrConfiguration)
	}

	if config.Version < 0 {
		return clienterrors.NewErrorf("version cannot be negative, got %d", config.Version).
			Mark(clienterrors.ErrConfiguration)
	}

	if config.CustomTimeout < 0 {
		return clienterrors.NewError("timeout cannot be less than 0 seconds").Mark(clienterrors.ErrConfiguration)
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return clienterrors.NewError("max redirects cannot be less than 1").Mark(clienterrors.ErrConfiguration)
	}

	if !lo.Contains([]string{logger.LogOutputJSON, logger.LogOutputHumanReadable}, config.LogOutputFormat) {
		return clienterrors.NewErrorf("unknown log output format %q", config.LogOutputFormat).
			WithHintf("use %q or %q", logger.LogOutputJSON, logger.LogOutputHumanReadable).
			Mark(clienterrors.ErrConfiguration)
	}

	return nil
}
