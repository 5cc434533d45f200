// authenticationhandler/query_canonicalizer.go
package authenticationhandler

import (
	"strings"
)

// NormalizeQueryString re-serialises the query component of rawURL into the stable form the store
// recomputes when it verifies a signature received over plain HTTP. A URL without '?' is returned
// unchanged. Pairs keep their encounter order and duplicates are preserved; each key and value is
// decoded and re-encoded with EncodeQueryComponent. The path and any fragment are left untouched.
//
// Only call this for http:// endpoints. Over TLS the raw URL must be signed as-is.
func NormalizeQueryString(rawURL string) string {
	idx := strings.IndexByte(rawURL, '?')
	if idx < 0 {
		return rawURL
	}

	path, query := rawURL[:idx], rawURL[idx+1:]
	fragment := ""
	if hash := strings.IndexByte(query, '#'); hash >= 0 {
		query, fragment = query[:hash], query[hash:]
	}

	var b strings.Builder
	for _, pair := range splitQuery(query) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeQueryComponent(pair.Key))
		b.WriteByte('=')
		b.WriteString(EncodeQueryComponent(pair.Value))
	}

	return path + "?" + b.String() + fragment
}

// splitQuery decodes a raw query into ordered pairs. Empty segments are skipped and a segment
// without '=' yields an empty value.
func splitQuery(query string) []Pair {
	var pairs []Pair
	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, Pair{
			Key:   DecodeQueryComponent(key),
			Value: DecodeQueryComponent(value),
		})
	}
	return pairs
}
