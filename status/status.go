// status/status.go
// This package provides utility functions for categorising HTTP status codes returned by the store.
// The client never acts on them itself; they are used by the redirect policy and by callers rendering results.
package status

import (
	"fmt"
	"net/http"
)

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
// Redirect status codes instruct the client to make a new request to a different URI, as defined in the response's Location header.
//
// - 301 Moved Permanently
// - 302 Found
// - 303 See Other
// - 307 Temporary Redirect
// - 308 Permanent Redirect
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsSuccessStatusCode reports a 2xx status.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// storeStatusMessages describe how the store REST API uses the codes it returns.
var storeStatusMessages = map[int]string{
	http.StatusBadRequest:          "the store rejected the request parameters or body",
	http.StatusUnauthorized:        "the OAuth signature or integration tokens were not accepted",
	http.StatusForbidden:           "the integration is not allowed to access this resource",
	http.StatusNotFound:            "the resource or endpoint does not exist",
	http.StatusMethodNotAllowed:    "the endpoint does not support this HTTP method",
	http.StatusNotAcceptable:       "the store cannot produce a JSON response for this request",
	http.StatusInternalServerError: "the store failed while processing the request",
	http.StatusServiceUnavailable:  "the store is in maintenance mode or overloaded",
}

// TranslateStatusCode returns a short human readable explanation of statusCode.
func TranslateStatusCode(statusCode int) string {
	if msg, ok := storeStatusMessages[statusCode]; ok {
		return fmt.Sprintf("%d %s: %s", statusCode, http.StatusText(statusCode), msg)
	}
	if text := http.StatusText(statusCode); text != "" {
		return fmt.Sprintf("%d %s", statusCode, text)
	}
	return fmt.Sprintf("%d unknown status", statusCode)
}
