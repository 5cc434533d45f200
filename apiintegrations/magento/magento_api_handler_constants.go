// apiintegrations/magento/magento_api_handler_constants.go
package magento

const (
	APIName               = "magento"                  // APIName: represents the name of the API.
	DefaultEndpointType   = "V1"                       // DefaultEndpointType: namespace segment used by current generation stores.
	LegacyResourcePrefix  = "api/rest/"                // LegacyResourcePrefix: path prefix for Magento 1.x REST resources.
	CurrentResourcePrefix = "rest/"                    // CurrentResourcePrefix: path prefix for Magento 2.x REST resources.
	SearchCriteriaKey     = "searchCriteria"           // SearchCriteriaKey: root of every structured query parameter.
	MatchAllQuery         = SearchCriteriaKey + "=all" // MatchAllQuery: match-everything default for searchable endpoints.
)

// searchableEndpoints reject a GET without searchCriteria on current generation stores.
var searchableEndpoints = []string{"orders", "products"}

// structuredTriggerKeys select the structured search criteria dialect. Matching is exact and case-sensitive.
var structuredTriggerKeys = []string{
	"filter_groups", "filterGroups",
	"sort_orders", "sortOrders",
	"page_size", "pageSize",
	"current_page", "currentPage",
}

// legacyReservedKeys are passed through verbatim by the legacy filter dialect.
var legacyReservedKeys = []string{"page", "limit", "order", "dir"}

// structuredKeyAliases maps accepted camelCase spellings to the field names the store expects.
var structuredKeyAliases = map[string]string{
	"filterGroups":  "filter_groups",
	"sortOrders":    "sort_orders",
	"pageSize":      "page_size",
	"currentPage":   "current_page",
	"conditionType": "condition_type",
}
