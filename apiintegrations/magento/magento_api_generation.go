// apiintegrations/magento/magento_api_generation.go
package magento

import (
	"strings"

	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
)

// Generation is the major REST dialect spoken by the store.
type Generation int

const (
	// GenerationCurrent is the Magento 2.x REST API with structured searchCriteria. It is the zero value.
	GenerationCurrent Generation = iota
	// GenerationLegacy is the Magento 1.x REST API with flat filter parameters.
	GenerationLegacy
)

func (g Generation) String() string {
	switch g {
	case GenerationLegacy:
		return "legacy"
	case GenerationCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// GenerationFromVersion maps the configured store major version to a Generation.
// 1 selects the legacy API; 0 (unset) and anything from 2 upwards select the current API.
func GenerationFromVersion(version int) Generation {
	if version == 1 {
		return GenerationLegacy
	}
	return GenerationCurrent
}

// ParseGeneration accepts "legacy", "current", "1" or "2", case-insensitively.
func ParseGeneration(s string) (Generation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "1":
		return GenerationLegacy, nil
	case "current", "2", "":
		return GenerationCurrent, nil
	default:
		return GenerationCurrent, clienterrors.NewErrorf("unknown api generation %q", s).
			WithHint("use legacy (Magento 1.x) or current (Magento 2.x)").
			Mark(clienterrors.ErrConfiguration)
	}
}
