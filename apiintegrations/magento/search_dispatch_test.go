// apiintegrations/magento/search_dispatch_test.go
package magento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name       string
		generation Generation
		endpoint   string
		params     SearchCriteria
		expected   StrategyTag
	}{
		{"nil params on orders", GenerationCurrent, "orders", nil, StrategyMatchAll},
		{"nil params on products", GenerationCurrent, "products", nil, StrategyMatchAll},
		{"nil params on customers", GenerationCurrent, "customers", nil, StrategyNone},
		{"nil params on orders with query", GenerationCurrent, "orders?storeId=1", nil, StrategyNone},
		{"nil params on legacy orders", GenerationLegacy, "orders", nil, StrategyNone},
		{"camelCase trigger", GenerationCurrent, "products", SearchCriteria{"filterGroups": []any{}}, StrategyStructured},
		{"snake_case trigger", GenerationCurrent, "products", SearchCriteria{"filter_groups": []any{}}, StrategyStructured},
		{"paging trigger only", GenerationCurrent, "orders", SearchCriteria{"pageSize": 10}, StrategyStructured},
		{"current_page trigger", GenerationCurrent, "orders", SearchCriteria{"current_page": 1}, StrategyStructured},
		{"sort trigger beside plain keys", GenerationCurrent, "orders", SearchCriteria{"sku": "A", "sort_orders": []any{}}, StrategyStructured},
		{"plain key", GenerationCurrent, "products", SearchCriteria{"sku": "ABC"}, StrategySimpleFilter},
		{"empty map", GenerationCurrent, "products", SearchCriteria{}, StrategySimpleFilter},
		{"trigger match is case-sensitive", GenerationCurrent, "products", SearchCriteria{"FilterGroups": 1}, StrategySimpleFilter},
		{"trigger match is exact", GenerationCurrent, "products", SearchCriteria{"page_size_max": 1}, StrategySimpleFilter},
		{"legacy ignores triggers", GenerationLegacy, "products", SearchCriteria{"filterGroups": []any{}}, StrategyLegacyFilter},
		{"legacy plain key", GenerationLegacy, "products", SearchCriteria{"sku": "ABC"}, StrategyLegacyFilter},
		{"legacy empty map", GenerationLegacy, "customers", SearchCriteria{}, StrategyLegacyFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectStrategy(tt.generation, tt.endpoint, tt.params))
		})
	}
}

func TestStrategyTag_String(t *testing.T) {
	assert.Equal(t, "structured", StrategyStructured.String())
	assert.Equal(t, "unknown", StrategyTag(42).String())
}
