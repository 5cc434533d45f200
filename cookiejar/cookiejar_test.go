// cookiejar/cookiejar_test.go
package cookiejar

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedactSensitiveCookies tests the RedactSensitiveCookies function to ensure it correctly redacts sensitive cookies.
func TestRedactSensitiveCookies(t *testing.T) {
	cookies := []*http.Cookie{
		{Name: "PHPSESSID", Value: "sensitive-value-1"},
		{Name: "form_key", Value: "non-sensitive-value"},
		{Name: "AWSALBCORS", Value: "sensitive-value-2"},
	}

	redactedCookies := RedactSensitiveCookies(cookies)

	expectedValues := map[string]string{
		"PHPSESSID":  "REDACTED",
		"form_key":   "non-sensitive-value",
		"AWSALBCORS": "REDACTED",
	}

	for _, cookie := range redactedCookies {
		assert.Equal(t, expectedValues[cookie.Name], cookie.Value, "Cookie value should match expected redaction outcome")
	}
}

func TestCookieNames(t *testing.T) {
	assert.Equal(t, []string{"a=1", "b=2"}, CookieNames([]*http.Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}))
}

func TestSetupCookieJar(t *testing.T) {
	client := &http.Client{}
	require.NoError(t, SetupCookieJar(client, false, logger.NewNopLogger()))
	assert.Nil(t, client.Jar)

	require.NoError(t, SetupCookieJar(client, true, logger.NewNopLogger()))
	assert.NotNil(t, client.Jar)
}

func TestSetupCookieJarRejectsPublicSuffixDomain(t *testing.T) {
	client := &http.Client{}
	require.NoError(t, SetupCookieJar(client, true, logger.NewNopLogger()))

	store, _ := url.Parse("https://shop.example.co.uk/rest/V1/orders")
	sibling, _ := url.Parse("https://other.co.uk/")
	client.Jar.SetCookies(store, []*http.Cookie{
		{Name: "wide", Value: "1", Domain: "co.uk"},
		{Name: "PHPSESSID", Value: "2"},
	})

	assert.Empty(t, client.Jar.Cookies(sibling))
	assert.Equal(t, []string{"PHPSESSID=2"}, CookieNames(client.Jar.Cookies(store)))
}
