// apiintegrations/magento/magento_api_generation_test.go
package magento

import (
	"testing"

	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/stretchr/testify/assert"
)

func TestGenerationFromVersion(t *testing.T) {
	tests := []struct {
		version  int
		expected Generation
	}{
		{0, GenerationCurrent},
		{1, GenerationLegacy},
		{2, GenerationCurrent},
		{3, GenerationCurrent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GenerationFromVersion(tt.version), "version %d", tt.version)
	}
}

func TestParseGeneration(t *testing.T) {
	tests := []struct {
		input    string
		expected Generation
		wantErr  bool
	}{
		{"legacy", GenerationLegacy, false},
		{"LEGACY", GenerationLegacy, false},
		{"1", GenerationLegacy, false},
		{"current", GenerationCurrent, false},
		{"2", GenerationCurrent, false},
		{"", GenerationCurrent, false},
		{"magento3", GenerationCurrent, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gen, err := ParseGeneration(tt.input)
			if tt.wantErr {
				assert.True(t, clienterrors.IsConfiguration(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, gen)
		})
	}
}

func TestGeneration_String(t *testing.T) {
	assert.Equal(t, "legacy", GenerationLegacy.String())
	assert.Equal(t, "current", GenerationCurrent.String())
}
