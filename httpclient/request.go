// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-magento-client/apiintegrations/magento"
	"github.com/deploymenttheory/go-api-magento-client/authenticationhandler"
	"github.com/deploymenttheory/go-api-magento-client/cookiejar"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/deploymenttheory/go-api-magento-client/headers"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var supportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// RequestDescriptor is one fully resolved request: the method, the final URL as it is signed and sent,
// and the encoded JSON body, if any.
type RequestDescriptor struct {
	Method      string
	ResolvedURL string
	Body        []byte
}

// DoRequest is the synchronous core shared by Get, Post, Put and Delete.
//
// params are translated into a query string for GET requests only. body is JSON encoded for the other
// methods and may be nil. The response is returned exactly as the HTTP collaborator produced it,
// whatever its status; the caller must close its body. An error from the collaborator is returned
// unwrapped, errors raised here match errors.ErrSigning or errors.ErrRequestEncoding.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, params magento.SearchCriteria, body any) (*http.Response, error) {
	desc, err := c.Describe(method, endpoint, params, body)
	if err != nil {
		return nil, err
	}

	req, err := c.newSignedRequest(ctx, desc)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("Dispatching request", zap.String("method", desc.Method), zap.String("url", desc.ResolvedURL))

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logger.Debug("HTTP collaborator returned an error", zap.String("method", desc.Method), zap.String("url", desc.ResolvedURL), zap.Error(err))
		return nil, err
	}

	c.Logger.Debug("Received response",
		zap.String("method", desc.Method),
		zap.String("url", desc.ResolvedURL),
		zap.Int("status_code", resp.StatusCode),
		zap.Strings("cookies", cookiejar.CookieNames(c.responseCookies(resp))),
	)
	return resp, nil
}

// Describe resolves method, endpoint, params and body into the request that would be signed and sent.
// Plain http:// stores get their query canonicalised here; https:// URLs are left as built.
func (c *Client) Describe(method, endpoint string, params magento.SearchCriteria, body any) (RequestDescriptor, error) {
	method = strings.ToUpper(method)
	if !lo.Contains(supportedMethods, method) {
		return RequestDescriptor{}, clienterrors.NewErrorf("unsupported HTTP method %q", method).
			Mark(clienterrors.ErrRequestEncoding)
	}

	if method == http.MethodGet {
		translated, err := c.handler.TranslateSearchCriteria(endpoint, params)
		if err != nil {
			return RequestDescriptor{}, err
		}
		endpoint = translated
	}

	resolvedURL := c.handler.ConstructAPIResourceEndpoint(endpoint)
	if c.plainHTTP {
		resolvedURL = authenticationhandler.NormalizeQueryString(resolvedURL)
	}

	var payload []byte
	if method != http.MethodGet {
		data, err := c.handler.MarshalRequest(body, method, endpoint)
		if err != nil {
			return RequestDescriptor{}, err
		}
		payload = data
	}

	return RequestDescriptor{Method: method, ResolvedURL: resolvedURL, Body: payload}, nil
}

// newSignedRequest builds the *http.Request for desc and attaches the OAuth and JSON headers.
// JSON bodies are not covered by the signature, only form encoded bodies would be.
func (c *Client) newSignedRequest(ctx context.Context, desc RequestDescriptor) (*http.Request, error) {
	authorization, err := c.signer.AuthorizationHeader(authenticationhandler.SignatureContext{
		Method: desc.Method,
		URL:    desc.ResolvedURL,
	})
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if desc.Body != nil {
		bodyReader = bytes.NewReader(desc.Body)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, desc.ResolvedURL, bodyReader)
	if err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("build request").
			Mark(clienterrors.ErrRequestEncoding)
	}

	headerHandler := headers.NewHeaderHandler(req, c.Logger, c.config.HideSensitiveData)
	headerHandler.SetRequestHeaders(authorization, c.userAgent)
	headerHandler.LogHeaders()

	return req, nil
}

func (c *Client) responseCookies(resp *http.Response) []*http.Cookie {
	cookies := resp.Cookies()
	if c.config.HideSensitiveData {
		return cookiejar.RedactSensitiveCookies(cookies)
	}
	return cookies
}
