// apiintegrations/magento/magento_api_url_test.go
package magento

import (
	"testing"

	"github.com/deploymenttheory/go-api-magento-client/logger"
	"github.com/deploymenttheory/go-api-magento-client/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildResourceURL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		generation   Generation
		endpointType string
		endpoint     string
		expected     string
	}{
		{"legacy without trailing slash", "http://store.test", GenerationLegacy, "", "products", "http://store.test/api/rest/products"},
		{"current with trailing slash", "https://store.test/", GenerationCurrent, "V1", "products", "https://store.test/rest/V1/products"},
		{"legacy ignores namespace", "http://store.test/", GenerationLegacy, "V1", "customers", "http://store.test/api/rest/customers"},
		{"default namespace", "https://store.test//", GenerationCurrent, "", "orders", "https://store.test/rest/V1/orders"},
		{"store view namespace", "https://store.test/shop", GenerationCurrent, "all", "/orders?searchCriteria=all", "https://store.test/shop/rest/all/orders?searchCriteria=all"},
		{"query is not re-encoded", "http://store.test", GenerationCurrent, "V1", "products?searchCriteria%5BpageSize%5D=1", "http://store.test/rest/V1/products?searchCriteria%5BpageSize%5D=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildResourceURL(tt.baseURL, tt.generation, tt.endpointType, tt.endpoint))
		})
	}
}

// TestConstructAPIResourceEndpoint tests the ConstructAPIResourceEndpoint function.
func TestConstructAPIResourceEndpoint(t *testing.T) {
	mockLog := mocklogger.NewMockLogger()
	mockLog.On("Debug", "Constructed magento API resource endpoint URL", mock.Anything).Once()

	handler := NewMagentoAPIHandler("https://store.test", GenerationCurrent, "", mockLog)

	assert.Equal(t, "https://store.test/rest/V1/products/24-MB01", handler.ConstructAPIResourceEndpoint("products/24-MB01"))
	mockLog.AssertExpectations(t)
}

func TestTranslateSearchCriteria(t *testing.T) {
	tests := []struct {
		name       string
		generation Generation
		endpoint   string
		params     SearchCriteria
		expected   string
	}{
		{"match all", GenerationCurrent, "orders", nil, "orders?searchCriteria=all"},
		{"no query", GenerationCurrent, "customers/1", nil, "customers/1"},
		{"empty criteria", GenerationCurrent, "customers/search", SearchCriteria{}, "customers/search"},
		{"existing query", GenerationLegacy, "products?store=2", SearchCriteria{"limit": 5}, "products?store=2&limit=5"},
		{"legacy filter", GenerationLegacy, "products", SearchCriteria{"sku": "A"}, "products?filter[1][attribute]=sku&filter[1][eq]=A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMagentoAPIHandler("http://store.test", tt.generation, "", logger.NewNopLogger())

			endpoint, err := handler.TranslateSearchCriteria(tt.endpoint, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, endpoint)
		})
	}
}
