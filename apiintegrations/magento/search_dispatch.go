// apiintegrations/magento/search_dispatch.go
package magento

import (
	"github.com/samber/lo"
)

// StrategyTag names the encoding chosen for a GET request's search criteria.
type StrategyTag int

const (
	// StrategyNone means the request carries no query string.
	StrategyNone StrategyTag = iota
	// StrategyMatchAll sends the literal searchCriteria=all.
	StrategyMatchAll
	// StrategyLegacyFilter sends Magento 1.x flat filter[n][attribute] parameters.
	StrategyLegacyFilter
	// StrategyStructured flattens filter groups, sort orders and paging under searchCriteria.
	StrategyStructured
	// StrategySimpleFilter turns each key/value pair into its own filter group.
	StrategySimpleFilter
)

func (t StrategyTag) String() string {
	switch t {
	case StrategyNone:
		return "none"
	case StrategyMatchAll:
		return "match-all"
	case StrategyLegacyFilter:
		return "legacy-filter"
	case StrategyStructured:
		return "structured"
	case StrategySimpleFilter:
		return "simple-filter"
	default:
		return "unknown"
	}
}

// SelectStrategy decides how params are encoded for endpoint.
//
//   - nil params: searchCriteria=all for the searchable endpoints of a current store, otherwise nothing.
//   - legacy store: always the legacy filter dialect, whatever the keys look like.
//   - current store: structured when any key exactly matches a trigger key, else simple filters.
//     An empty map has no trigger key and so selects simple filters.
func SelectStrategy(gen Generation, endpoint string, params SearchCriteria) StrategyTag {
	if params == nil {
		if gen == GenerationCurrent && lo.Contains(searchableEndpoints, endpoint) {
			return StrategyMatchAll
		}
		return StrategyNone
	}

	if gen == GenerationLegacy {
		return StrategyLegacyFilter
	}

	for key := range params {
		if lo.Contains(structuredTriggerKeys, key) {
			return StrategyStructured
		}
	}
	return StrategySimpleFilter
}
