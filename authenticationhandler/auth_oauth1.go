// authenticationhandler/auth_oauth1.go

/* The authenticationhandler package signs store requests with one-legged OAuth 1.0a (HMAC-SHA1).
The consumer and access token credentials are issued by the store's integration settings; there is no
token exchange, every request carries its own signature in the Authorization header. */

package authenticationhandler

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/google/uuid"
)

const (
	SignatureMethodHMACSHA1 = "HMAC-SHA1"
	OAuthVersion            = "1.0"
	authorizationScheme     = "OAuth "
)

// Credentials are the four opaque strings issued for a store integration.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	TokenSecret    string
}

// validate reports the first empty credential.
func (c Credentials) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"consumerKey", c.ConsumerKey},
		{"consumerSecret", c.ConsumerSecret},
		{"accessToken", c.AccessToken},
		{"tokenSecret", c.TokenSecret},
	}
	for _, f := range fields {
		if f.value == "" {
			return clienterrors.NewErrorf("%s is empty", f.name).Mark(clienterrors.ErrSigning)
		}
	}
	return nil
}

// SignatureContext is the request material covered by one signature.
// Body only contributes when the request is form encoded; JSON bodies are not signed.
type SignatureContext struct {
	Method string
	URL    string
	Body   url.Values
}

// Pair is a single decoded parameter.
type Pair struct {
	Key   string
	Value string
}

// Signer produces OAuth 1.0a Authorization headers. It holds no mutable state and is safe for concurrent use.
type Signer struct {
	credentials Credentials
	nonceFunc   func() string
	nowFunc     func() time.Time
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithNonceFunc overrides nonce generation. Intended for tests.
func WithNonceFunc(f func() string) SignerOption {
	return func(s *Signer) {
		s.nonceFunc = f
	}
}

// WithNowFunc overrides the clock used for oauth_timestamp. Intended for tests.
func WithNowFunc(f func() time.Time) SignerOption {
	return func(s *Signer) {
		s.nowFunc = f
	}
}

// NewSigner returns a Signer for the given credentials.
func NewSigner(credentials Credentials, opts ...SignerOption) *Signer {
	s := &Signer{
		credentials: credentials,
		nonceFunc:   generateNonce,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// generateNonce returns 32 hex characters from a random UUID.
func generateNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// AuthorizationHeader signs sc and renders the Authorization header value.
func (s *Signer) AuthorizationHeader(sc SignatureContext) (string, error) {
	params, err := s.Authorize(sc)
	if err != nil {
		return "", err
	}
	return RenderAuthorizationHeader(params), nil
}

// Authorize returns the oauth_* protocol parameters for sc, including oauth_signature.
func (s *Signer) Authorize(sc SignatureContext) ([]Pair, error) {
	if err := s.credentials.validate(); err != nil {
		return nil, err
	}
	if sc.Method == "" || sc.URL == "" {
		return nil, clienterrors.NewError("method and url are required to sign a request").Mark(clienterrors.ErrSigning)
	}

	oauthParams := []Pair{
		{"oauth_consumer_key", s.credentials.ConsumerKey},
		{"oauth_nonce", s.nonceFunc()},
		{"oauth_signature_method", SignatureMethodHMACSHA1},
		{"oauth_timestamp", strconv.FormatInt(s.nowFunc().Unix(), 10)},
		{"oauth_token", s.credentials.AccessToken},
		{"oauth_version", OAuthVersion},
	}

	baseString := SignatureBaseString(sc, oauthParams)
	signature := Sign(baseString, SigningKey(s.credentials.ConsumerSecret, s.credentials.TokenSecret))

	return append(oauthParams, Pair{"oauth_signature", signature}), nil
}

// SigningKey joins the encoded consumer and token secrets.
func SigningKey(consumerSecret, tokenSecret string) string {
	return PercentEncode(consumerSecret) + "&" + PercentEncode(tokenSecret)
}

// Sign returns the base64 HMAC-SHA1 digest of baseString.
func Sign(baseString, key string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(baseString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignatureBaseString assembles METHOD&base-url&parameter-string per RFC 5849 section 3.4.1.
func SignatureBaseString(sc SignatureContext, oauthParams []Pair) string {
	baseURL, rawQuery := splitURL(sc.URL)

	params := make([]Pair, 0, len(oauthParams))
	params = append(params, oauthParams...)
	params = append(params, splitQuery(rawQuery)...)
	for key, values := range sc.Body {
		for _, v := range values {
			params = append(params, Pair{Key: key, Value: v})
		}
	}

	return strings.ToUpper(sc.Method) + "&" + PercentEncode(baseURL) + "&" + PercentEncode(NormalizeParameters(params))
}

// NormalizeParameters encodes every pair, sorts by key then value and joins them with '&'.
func NormalizeParameters(params []Pair) string {
	encoded := make([]Pair, len(params))
	for i, p := range params {
		encoded[i] = Pair{Key: PercentEncode(p.Key), Value: PercentEncode(p.Value)}
	}
	sort.Slice(encoded, func(i, j int) bool {
		if encoded[i].Key != encoded[j].Key {
			return encoded[i].Key < encoded[j].Key
		}
		return encoded[i].Value < encoded[j].Value
	})

	parts := make([]string, len(encoded))
	for i, p := range encoded {
		parts[i] = p.Key + "=" + p.Value
	}
	return strings.Join(parts, "&")
}

// RenderAuthorizationHeader renders the oauth_* pairs as `OAuth k="v", ...` sorted by key.
func RenderAuthorizationHeader(params []Pair) string {
	sorted := make([]Pair, 0, len(params))
	for _, p := range params {
		if strings.HasPrefix(p.Key, "oauth_") {
			sorted = append(sorted, p)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var b strings.Builder
	b.WriteString(authorizationScheme)
	for i, p := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(PercentEncode(p.Key))
		b.WriteString(`="`)
		b.WriteString(PercentEncode(p.Value))
		b.WriteByte('"')
	}
	return b.String()
}

// splitURL separates the base string URI from its raw query. The scheme and host are lowercased
// and default ports dropped, per RFC 5849 section 3.4.1.2.
func splitURL(rawURL string) (string, string) {
	base, query, _ := strings.Cut(rawURL, "?")
	base, _, _ = strings.Cut(base, "#")
	query, _, _ = strings.Cut(query, "#")

	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base, query
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if (scheme == "http" && strings.HasSuffix(host, ":80")) || (scheme == "https" && strings.HasSuffix(host, ":443")) {
		host = host[:strings.LastIndexByte(host, ':')]
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path, query
}
