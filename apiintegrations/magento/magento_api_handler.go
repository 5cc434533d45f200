// apiintegrations/magento/magento_api_handler.go
package magento

import (
	"github.com/deploymenttheory/go-api-magento-client/logger"
)

// MagentoAPIHandler holds the per-store settings used to build resource URLs and translate search criteria.
type MagentoAPIHandler struct {
	BaseURL      string        // BaseURL is the store root, e.g. https://store.example.com/.
	Generation   Generation    // Generation selects the URL shape and the filter dialect.
	EndpointType string        // EndpointType is the namespace segment for current generation stores.
	Logger       logger.Logger // Logger is the structured logger used for logging.
	Translator   *Translator   // Translator encodes search criteria for GET requests.
}

// NewMagentoAPIHandler returns a handler with the default translator for gen.
// An empty endpointType falls back to DefaultEndpointType.
func NewMagentoAPIHandler(baseURL string, gen Generation, endpointType string, log logger.Logger, opts ...TranslatorOption) *MagentoAPIHandler {
	if endpointType == "" {
		endpointType = DefaultEndpointType
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &MagentoAPIHandler{
		BaseURL:      baseURL,
		Generation:   gen,
		EndpointType: endpointType,
		Logger:       log,
		Translator:   NewTranslator(gen, opts...),
	}
}
