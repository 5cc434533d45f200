// headers/redact/redact.go
package redact

import (
	"net/http"
	"net/url"
	"strings"
)

// sensitiveKeys are header names and config fields whose values never reach the logs when redaction is on.
var sensitiveKeys = map[string]bool{
	"authorization":   true,
	"accesstoken":     true,
	"consumersecret":  true,
	"tokensecret":     true,
	"oauth_signature": true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
// Key matching is case-insensitive so header canonicalisation does not matter.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && sensitiveKeys[strings.ToLower(key)] {
		return "REDACTED"
	}
	return value
}

// RedactHeaders returns a copy of headers with sensitive values replaced.
func RedactHeaders(hideSensitiveData bool, headers http.Header) http.Header {
	redacted := make(http.Header, len(headers))
	for name, values := range headers {
		for _, v := range values {
			redacted.Add(name, RedactSensitiveHeaderData(hideSensitiveData, name, v))
		}
	}
	return redacted
}

// URL hides any password embedded in rawURL. Unparseable input is returned unchanged.
func URL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Redacted()
}
