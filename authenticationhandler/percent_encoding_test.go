// authenticationhandler/percent_encoding_test.go
package authenticationhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abcXYZ019-._~", "abcXYZ019-._~"},
		{"Hello Ladies + Gentlemen, a signed OAuth request!", "Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21"},
		{"a[b]", "a%5Bb%5D"},
		{"*'()", "%2A%27%28%29"},
		{"é", "%C3%A9"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentEncode(tt.input))
		})
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*'()!", "*'()!"},
		{"a b&c=d", "a%20b%26c%3Dd"},
		{"filter[0]", "filter%5B0%5D"},
		{"100%", "100%25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeURIComponent(tt.input))
		})
	}
}

func TestEncodeQueryComponentKeepsBrackets(t *testing.T) {
	assert.Equal(t, "searchCriteria[filter_groups][0][filters][0][field]",
		EncodeQueryComponent("searchCriteria[filter_groups][0][filters][0][field]"))
	assert.Equal(t, "a%20[b]", EncodeQueryComponent("a [b]"))
	assert.Equal(t, "%255B", EncodeQueryComponent("%5B"), "an encoded percent sign must not be mistaken for a bracket")
}

func TestDecodeQueryComponent(t *testing.T) {
	assert.Equal(t, "a b", DecodeQueryComponent("a+b"))
	assert.Equal(t, "a b", DecodeQueryComponent("a%20b"))
	assert.Equal(t, "[x]", DecodeQueryComponent("%5Bx%5D"))
	assert.Equal(t, "100%zz", DecodeQueryComponent("100%zz"), "invalid escapes are left untouched")
}
