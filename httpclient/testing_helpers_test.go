// httpclient/testing_helpers_test.go
package httpclient

import (
	"net/url"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/stretchr/testify/require"
)

func validConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:        baseURL,
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		AccessToken:    "access-token",
		TokenSecret:    "token-secret",
	}
}

func buildTestClient(t *testing.T, config ClientConfig, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(logger.NewNopLogger())}, opts...)
	client, err := BuildClient(config, opts...)
	require.NoError(t, err)
	return client
}

// parseAuthorizationHeader decodes an `OAuth k="v", ...` header into its parameters.
func parseAuthorizationHeader(t *testing.T, header string) map[string]string {
	t.Helper()
	require.True(t, strings.HasPrefix(header, "OAuth "), "unexpected scheme in %q", header)

	params := map[string]string{}
	for _, part := range strings.Split(strings.TrimPrefix(header, "OAuth "), ", ") {
		key, quoted, ok := strings.Cut(part, "=")
		require.True(t, ok, "malformed parameter %q", part)
		value, err := url.PathUnescape(strings.Trim(quoted, `"`))
		require.NoError(t, err)
		params[key] = value
	}
	return params
}
