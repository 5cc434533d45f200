// apiintegrations/magento/search_strategies_test.go
package magento

import (
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-magento-client/authenticationhandler"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const group0 = "searchCriteria[filter_groups][0][filters][0]"
const group1 = "searchCriteria[filter_groups][1][filters][0]"

func TestSimpleFilterStrategy_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   SearchCriteria
		expected string
	}{
		{
			name:     "scalar is eq",
			params:   SearchCriteria{"sku": "ABC"},
			expected: group0 + "[field]=sku&" + group0 + "[value]=ABC&" + group0 + "[condition_type]=eq",
		},
		{
			name:     "number and bool",
			params:   SearchCriteria{"is_active": true, "store_id": 1},
			expected: group0 + "[field]=is_active&" + group0 + "[value]=true&" + group0 + "[condition_type]=eq&" + group1 + "[field]=store_id&" + group1 + "[value]=1&" + group1 + "[condition_type]=eq",
		},
		{
			name: "list is in and map picks condition",
			params: SearchCriteria{
				"entity_id": []int{1, 2},
				"name":      map[string]any{"like": "%shirt%"},
			},
			expected: group0 + "[field]=entity_id&" + group0 + "[value]=1%2C2&" + group0 + "[condition_type]=in&" + group1 + "[field]=name&" + group1 + "[value]=%25shirt%25&" + group1 + "[condition_type]=like",
		},
		{
			name:     "one group per condition",
			params:   SearchCriteria{"price": map[string]any{"to": 20, "from": 10}},
			expected: group0 + "[field]=price&" + group0 + "[value]=10&" + group0 + "[condition_type]=from&" + group1 + "[field]=price&" + group1 + "[value]=20&" + group1 + "[condition_type]=to",
		},
		{
			name:     "spaces are percent encoded",
			params:   SearchCriteria{"name": "blue shirt"},
			expected: group0 + "[field]=name&" + group0 + "[value]=blue%20shirt&" + group0 + "[condition_type]=eq",
		},
		{
			name:     "empty map",
			params:   SearchCriteria{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := SimpleFilterStrategy{}.Encode(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestStructuredStrategy_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   SearchCriteria
		expected string
	}{
		{
			name: "typed criteria",
			params: NewSearchCriteria(
				WithFilterGroup(Filter{Field: "sku", Value: "WSH%", ConditionType: ConditionLike}),
				WithSortOrder("created_at", SortDescending),
				WithPageSize(20),
				WithCurrentPage(2),
			),
			expected: "searchCriteria[current_page]=2" +
				"&searchCriteria[filter_groups][0][filters][0][condition_type]=like" +
				"&searchCriteria[filter_groups][0][filters][0][field]=sku" +
				"&searchCriteria[filter_groups][0][filters][0][value]=WSH%25" +
				"&searchCriteria[page_size]=20" +
				"&searchCriteria[sort_orders][0][direction]=DESC" +
				"&searchCriteria[sort_orders][0][field]=created_at",
		},
		{
			name:     "camelCase paging",
			params:   SearchCriteria{"pageSize": 10, "currentPage": 1},
			expected: "searchCriteria[current_page]=1&searchCriteria[page_size]=10",
		},
		{
			name: "loose maps with list value",
			params: SearchCriteria{
				"filterGroups": []any{
					map[string]any{"filters": []any{
						map[string]any{"field": "status", "value": []string{"pending", "processing"}, "conditionType": "in"},
					}},
				},
			},
			expected: "searchCriteria[filter_groups][0][filters][0][condition_type]=in" +
				"&searchCriteria[filter_groups][0][filters][0][field]=status" +
				"&searchCriteria[filter_groups][0][filters][0][value]=pending%2Cprocessing",
		},
		{
			name: "ORed filters in one group",
			params: NewSearchCriteria(WithFilterGroup(
				Filter{Field: "sku", Value: "A", ConditionType: ConditionEq},
				Filter{Field: "sku", Value: "B"},
			)),
			expected: "searchCriteria[filter_groups][0][filters][0][condition_type]=eq" +
				"&searchCriteria[filter_groups][0][filters][0][field]=sku" +
				"&searchCriteria[filter_groups][0][filters][0][value]=A" +
				"&searchCriteria[filter_groups][0][filters][1][field]=sku" +
				"&searchCriteria[filter_groups][0][filters][1][value]=B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := StructuredStrategy{}.Encode(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestLegacyFilterStrategy_Encode(t *testing.T) {
	tests := []struct {
		name     string
		params   SearchCriteria
		expected string
	}{
		{
			name:     "eq filter",
			params:   SearchCriteria{"sku": "ABC"},
			expected: "filter[1][attribute]=sku&filter[1][eq]=ABC",
		},
		{
			name: "operators lists and reserved keys",
			params: SearchCriteria{
				"sku":       "ABC",
				"price":     map[string]any{"gt": 10},
				"entity_id": []int{1, 3},
				"limit":     10,
				"page":      2,
			},
			expected: "filter[1][attribute]=entity_id&filter[1][in][0]=1&filter[1][in][1]=3" +
				"&limit=10&page=2" +
				"&filter[2][attribute]=price&filter[2][gt]=10" +
				"&filter[3][attribute]=sku&filter[3][eq]=ABC",
		},
		{
			name:     "trigger keys are plain attributes",
			params:   SearchCriteria{"filterGroups": "x"},
			expected: "filter[1][attribute]=filterGroups&filter[1][eq]=x",
		},
		{
			name:     "order and dir",
			params:   SearchCriteria{"order": "name", "dir": "dsc"},
			expected: "dir=dsc&order=name",
		},
		{
			name:     "null condition",
			params:   SearchCriteria{"description": nil},
			expected: "filter[1][attribute]=description&filter[1][null]=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := LegacyFilterStrategy{}.Encode(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestStrategies_OutputIsCanonical(t *testing.T) {
	params := SearchCriteria{"name": map[string]any{"like": "Blue & Red [sale]"}, "pageSize": 5}

	for _, strategy := range []Strategy{StructuredStrategy{}, SimpleFilterStrategy{}, LegacyFilterStrategy{}} {
		query, err := strategy.Encode(params)
		require.NoError(t, err)
		assert.NotContains(t, query, "%5B")
		assert.NotContains(t, query, "%5D")

		url := "http://store.test/rest/V1/products?" + query
		assert.Equal(t, url, authenticationhandler.NormalizeQueryString(url))
	}
}

func TestStrategies_RejectUnencodableValues(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		params   SearchCriteria
	}{
		{"simple nested map", SimpleFilterStrategy{}, SearchCriteria{"sku": map[string]any{"eq": map[string]any{"x": 1}}}},
		{"legacy reserved list", LegacyFilterStrategy{}, SearchCriteria{"page": []int{1, 2}}},
		{"structured channel", StructuredStrategy{}, SearchCriteria{"pageSize": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.strategy.Encode(tt.params)
			require.Error(t, err)
			assert.True(t, clienterrors.IsRequestEncoding(err))
		})
	}
}

func TestMatchAllStrategy_Encode(t *testing.T) {
	query, err := MatchAllStrategy{}.Encode(SearchCriteria{"ignored": true})
	require.NoError(t, err)
	assert.Equal(t, "searchCriteria=all", query)
	assert.False(t, strings.Contains(query, "ignored"))
}
