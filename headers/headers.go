// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-magento-client/headers/redact"
	"github.com/deploymenttheory/go-api-magento-client/logger"
	"go.uber.org/zap"
)

const (
	// MediaTypeJSON is used for both Content-Type and Accept on every store request.
	MediaTypeJSON = "application/json"
)

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req               *http.Request // The http.Request for which headers are being managed
	log               logger.Logger // The logger to use for logging headers
	hideSensitiveData bool          // Redact Authorization when logging
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given http.Request and logger.
func NewHeaderHandler(req *http.Request, log logger.Logger, hideSensitiveData bool) *HeaderHandler {
	return &HeaderHandler{
		req:               req,
		log:               log,
		hideSensitiveData: hideSensitiveData,
	}
}

// SetAuthorization sets the Authorization header verbatim. The OAuth header already carries its scheme.
func (h *HeaderHandler) SetAuthorization(authorization string) {
	h.req.Header.Set("Authorization", authorization)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.req.Header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.req.Header.Set("User-Agent", userAgent)
}

// SetRequestHeaders applies the standard header set for a store request.
// An empty userAgent leaves the header to the transport.
func (h *HeaderHandler) SetRequestHeaders(authorization, userAgent string) {
	h.SetAuthorization(authorization)
	h.SetContentType(MediaTypeJSON)
	h.SetAccept(MediaTypeJSON)
	if userAgent != "" {
		h.SetUserAgent(userAgent)
	}
}

// LogHeaders prints all the current headers in the http.Request at debug level,
// redacting sensitive values when configured to do so.
func (h *HeaderHandler) LogHeaders() {
	if h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}
	redacted := redact.RedactHeaders(h.hideSensitiveData, h.req.Header)
	h.log.Debug("HTTP Request Headers", zap.String("Headers", HeadersToString(redacted)))
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line, sorted by name.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	sort.Strings(headerStrings)
	return strings.Join(headerStrings, "\n")
}
