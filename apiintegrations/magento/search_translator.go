// apiintegrations/magento/search_translator.go
package magento

import (
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
)

// Translator turns search criteria into a query string fragment for one API generation.
// It runs exactly one Strategy per call.
type Translator struct {
	generation Generation
	strategies map[StrategyTag]Strategy
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithStrategy replaces the encoder used for tag.
func WithStrategy(tag StrategyTag, strategy Strategy) TranslatorOption {
	return func(t *Translator) {
		t.strategies[tag] = strategy
	}
}

// NewTranslator returns a Translator using the built-in encoders unless overridden.
func NewTranslator(gen Generation, opts ...TranslatorOption) *Translator {
	t := &Translator{
		generation: gen,
		strategies: map[StrategyTag]Strategy{
			StrategyMatchAll:     MatchAllStrategy{},
			StrategyLegacyFilter: LegacyFilterStrategy{},
			StrategyStructured:   StructuredStrategy{},
			StrategySimpleFilter: SimpleFilterStrategy{},
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Generation returns the API generation the translator encodes for.
func (t *Translator) Generation() Generation {
	return t.generation
}

// Translate returns the query fragment for endpoint and params. ok is false when the request carries
// no query string at all.
func (t *Translator) Translate(endpoint string, params SearchCriteria) (query string, ok bool, err error) {
	tag := SelectStrategy(t.generation, endpoint, params)
	if tag == StrategyNone {
		return "", false, nil
	}

	strategy, found := t.strategies[tag]
	if !found || strategy == nil {
		return "", false, clienterrors.NewErrorf("no encoder registered for %s search criteria", tag).
			Mark(clienterrors.ErrRequestEncoding)
	}

	query, err = strategy.Encode(params)
	if err != nil {
		return "", false, err
	}
	return query, true, nil
}
