// apiintegrations/magento/magento_api_url.go
package magento

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// BuildResourceURL joins the store base URL, the generation specific prefix and endpoint.
// The base URL gets exactly one trailing slash. The endpoint, including any query it carries, is appended as-is.
func BuildResourceURL(baseURL string, gen Generation, endpointType, endpoint string) string {
	root := strings.TrimRight(baseURL, "/") + "/"
	endpoint = strings.TrimLeft(endpoint, "/")

	if gen == GenerationLegacy {
		return root + LegacyResourcePrefix + endpoint
	}
	if endpointType == "" {
		endpointType = DefaultEndpointType
	}
	return root + CurrentResourcePrefix + endpointType + "/" + endpoint
}

// ConstructAPIResourceEndpoint constructs the full URL for a store resource endpoint and logs the URL.
func (m *MagentoAPIHandler) ConstructAPIResourceEndpoint(endpoint string) string {
	url := BuildResourceURL(m.BaseURL, m.Generation, m.EndpointType, endpoint)
	m.Logger.Debug(fmt.Sprintf("Constructed %s API resource endpoint URL", APIName),
		zap.String("URL", url),
		zap.Stringer("Generation", m.Generation),
	)
	return url
}

// TranslateSearchCriteria appends the translated search criteria to endpoint.
// The query is joined with '&' when endpoint already carries one.
func (m *MagentoAPIHandler) TranslateSearchCriteria(endpoint string, params SearchCriteria) (string, error) {
	query, ok, err := m.Translator.Translate(endpoint, params)
	if err != nil {
		return "", err
	}
	if !ok || query == "" {
		return endpoint, nil
	}

	m.Logger.Debug("Translated search criteria",
		zap.String("Endpoint", endpoint),
		zap.String("Strategy", SelectStrategy(m.Generation, endpoint, params).String()),
		zap.String("Query", query),
	)

	if strings.Contains(endpoint, "?") {
		return endpoint + "&" + query, nil
	}
	return endpoint + "?" + query, nil
}
