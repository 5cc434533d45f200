// response/parse.go
package response

import (
	"mime"
	"strings"
)

// ParseContentTypeHeader returns the lower-cased media type of a Content-Type header and its parameters.
// Malformed parameters are dropped rather than failing the whole header.
func ParseContentTypeHeader(header string) (string, map[string]string) {
	mediaType, params, err := mime.ParseMediaType(header)
	if err == nil {
		return mediaType, params
	}

	mainValue, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mainValue)), map[string]string{}
}
