// authenticationhandler/percent_encoding.go
package authenticationhandler

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// PercentEncode encodes s per RFC 3986 section 2.1 as required by OAuth 1.0a (RFC 5849 section 3.6).
// Only ALPHA, DIGIT, '-', '.', '_' and '~' are left as-is.
func PercentEncode(s string) string {
	return escape(s, isUnreserved)
}

// EncodeURIComponent encodes s with the reserved set used by ECMAScript encodeURIComponent,
// which additionally leaves "!'()*" unescaped.
func EncodeURIComponent(s string) string {
	return escape(s, func(c byte) bool {
		return isUnreserved(c) || strings.IndexByte("!'()*", c) >= 0
	})
}

// EncodeQueryComponent is EncodeURIComponent with '[' and ']' restored to their literal form,
// the encoding the store uses for array-style query keys such as filter_groups[0][filters][0][field].
func EncodeQueryComponent(s string) string {
	encoded := EncodeURIComponent(s)
	if !strings.Contains(encoded, "%5") {
		return encoded
	}
	return bracketReplacer.Replace(encoded)
}

var bracketReplacer = strings.NewReplacer("%5B", "[", "%5D", "]")

// DecodeQueryComponent reverses form encoding ('+' is a space). Text that is not a valid
// escape sequence is returned unchanged.
func DecodeQueryComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func escape(s string, keep func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}
