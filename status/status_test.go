// status/status_test.go
package status

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRedirectStatusCode(t *testing.T) {
	for _, code := range []int{301, 302, 303, 307, 308} {
		assert.True(t, IsRedirectStatusCode(code), "%d", code)
	}
	for _, code := range []int{200, 304, 400} {
		assert.False(t, IsRedirectStatusCode(code), "%d", code)
	}
}

func TestIsPermanentRedirect(t *testing.T) {
	assert.True(t, IsPermanentRedirect(http.StatusMovedPermanently))
	assert.True(t, IsPermanentRedirect(http.StatusPermanentRedirect))
	assert.False(t, IsPermanentRedirect(http.StatusFound))
}

func TestIsSuccessStatusCode(t *testing.T) {
	assert.True(t, IsSuccessStatusCode(200))
	assert.True(t, IsSuccessStatusCode(204))
	assert.False(t, IsSuccessStatusCode(301))
	assert.False(t, IsSuccessStatusCode(401))
}

func TestTranslateStatusCode(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{401, "401 Unauthorized: the OAuth signature or integration tokens were not accepted"},
		{201, "201 Created"},
		{599, "599 unknown status"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TranslateStatusCode(tt.code))
	}
}
