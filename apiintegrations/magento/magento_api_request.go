// apiintegrations/magento/magento_api_request.go
package magento

import (
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalRequest encodes body as JSON for POST, PUT and DELETE requests. A nil body yields no payload.
func (m *MagentoAPIHandler) MarshalRequest(body any, method string, endpoint string) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("marshal request body for "+method+" "+endpoint).
			Mark(clienterrors.ErrRequestEncoding)
	}

	m.Logger.Debug("JSON Request Body", zap.String("Body", string(data)))
	return data, nil
}
