// cookiejar/cookiejar.go

/* The cookiejar package gives the client an optional cookie jar and keeps store session cookies
out of debug logs. The REST API is stateless, so the jar only matters behind load balancers or
web application firewalls that pin sessions with cookies. */

package cookiejar

import (
	"net/http"
	"net/http/cookiejar"
	"strings"

	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// SetupCookieJar initializes the HTTP client with a cookie jar if enabled in the configuration.
// The jar honours the public suffix list.
func SetupCookieJar(client *http.Client, enableCookieJar bool, log logger.Logger) error {
	if !enableCookieJar {
		return nil
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return clienterrors.WithError(err).WithMessage("setup cookie jar").Mark(clienterrors.ErrConfiguration)
	}
	client.Jar = jar
	log.Debug("Cookie jar enabled")
	return nil
}

// sensitiveCookiePrefixes cover the store's frontend and admin sessions and common load balancer affinity cookies.
var sensitiveCookiePrefixes = []string{"phpsessid", "frontend", "admin", "private_content", "awsalb"}

// RedactSensitiveCookies replaces the value of session cookies with REDACTED.
// It modifies the cookies in place and returns the same slice.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	for _, cookie := range cookies {
		name := strings.ToLower(cookie.Name)
		if lo.ContainsBy(sensitiveCookiePrefixes, func(prefix string) bool { return strings.HasPrefix(name, prefix) }) {
			cookie.Value = "REDACTED"
		}
	}
	return cookies
}

// CookieNames renders cookies as name=value pairs for logging.
func CookieNames(cookies []*http.Cookie) []string {
	return lo.Map(cookies, func(c *http.Cookie, _ int) string {
		return c.Name + "=" + c.Value
	})
}
