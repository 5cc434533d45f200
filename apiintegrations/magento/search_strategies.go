// apiintegrations/magento/search_strategies.go
package magento

import (
	"sort"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-api-magento-client/authenticationhandler"
	clienterrors "github.com/deploymenttheory/go-api-magento-client/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Strategy encodes search criteria into a query string fragment without the leading '?'.
type Strategy interface {
	Encode(params SearchCriteria) (string, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(params SearchCriteria) (string, error)

// Encode calls f.
func (f StrategyFunc) Encode(params SearchCriteria) (string, error) {
	return f(params)
}

// criteriaJSON decodes numbers as json.Number so large ids survive the round trip untouched.
var criteriaJSON = jsoniter.Config{
	UseNumber:   true,
	SortMapKeys: true,
}.Froze()

type queryPair struct {
	key   string
	value string
}

// MatchAllStrategy always returns searchCriteria=all.
type MatchAllStrategy struct{}

// Encode implements Strategy.
func (MatchAllStrategy) Encode(SearchCriteria) (string, error) {
	return MatchAllQuery, nil
}

// StructuredStrategy flattens nested criteria under searchCriteria using bracket paths, e.g.
// searchCriteria[filter_groups][0][filters][0][field]=sku. camelCase spellings of the known fields are
// rewritten to the store's snake_case names. A list under a "value" key is sent comma-joined.
type StructuredStrategy struct{}

// Encode implements Strategy.
func (StructuredStrategy) Encode(params SearchCriteria) (string, error) {
	tree, err := normalizeCriteria(params)
	if err != nil {
		return "", err
	}

	var pairs []queryPair
	if err := flattenCriteria(SearchCriteriaKey, "", renameStructuredKeys(tree), &pairs); err != nil {
		return "", err
	}
	return joinQueryPairs(pairs), nil
}

// SimpleFilterStrategy turns every key into its own filter group so all conditions must match.
// A scalar is an eq condition, a list is an in condition and a {condition: value} map
// produces one group per condition.
type SimpleFilterStrategy struct{}

// Encode implements Strategy.
func (SimpleFilterStrategy) Encode(params SearchCriteria) (string, error) {
	tree, err := normalizeCriteria(params)
	if err != nil {
		return "", err
	}

	var pairs []queryPair
	group := 0
	for _, field := range sortedKeys(tree) {
		conditions, err := fieldConditions(field, tree[field])
		if err != nil {
			return "", err
		}
		for _, c := range conditions {
			prefix := SearchCriteriaKey + "[filter_groups][" + strconv.Itoa(group) + "][filters][0]"
			pairs = append(pairs,
				queryPair{prefix + "[field]", field},
				queryPair{prefix + "[value]", c.value},
				queryPair{prefix + "[condition_type]", c.condition},
			)
			group++
		}
	}
	return joinQueryPairs(pairs), nil
}

// LegacyFilterStrategy encodes criteria in the Magento 1.x dialect:
// filter[1][attribute]=sku&filter[1][eq]=ABC. A {condition: value} map picks the operator and a list
// becomes an indexed in operand. page, limit, order and dir are passed through unchanged.
type LegacyFilterStrategy struct{}

// Encode implements Strategy.
func (LegacyFilterStrategy) Encode(params SearchCriteria) (string, error) {
	tree, err := normalizeCriteria(params)
	if err != nil {
		return "", err
	}

	var pairs []queryPair
	index := 1
	for _, key := range sortedKeys(tree) {
		value := tree[key]
		if lo.Contains(legacyReservedKeys, key) {
			s, err := scalarString(key, value)
			if err != nil {
				return "", err
			}
			pairs = append(pairs, queryPair{key, s})
			continue
		}

		prefix := "filter[" + strconv.Itoa(index) + "]"
		index++
		pairs = append(pairs, queryPair{prefix + "[attribute]", key})

		switch v := value.(type) {
		case map[string]any:
			for _, condition := range sortedKeys(v) {
				if err := appendLegacyOperand(&pairs, prefix+"["+condition+"]", key, v[condition]); err != nil {
					return "", err
				}
			}
		case []any:
			if err := appendLegacyOperand(&pairs, prefix+"["+ConditionIn+"]", key, v); err != nil {
				return "", err
			}
		case nil:
			pairs = append(pairs, queryPair{prefix + "[" + ConditionNull + "]", "1"})
		default:
			s, err := scalarString(key, v)
			if err != nil {
				return "", err
			}
			pairs = append(pairs, queryPair{prefix + "[" + ConditionEq + "]", s})
		}
	}
	return joinQueryPairs(pairs), nil
}

func appendLegacyOperand(pairs *[]queryPair, key, field string, operand any) error {
	list, ok := operand.([]any)
	if !ok {
		s, err := scalarString(field, operand)
		if err != nil {
			return err
		}
		*pairs = append(*pairs, queryPair{key, s})
		return nil
	}
	for i, item := range list {
		s, err := scalarString(field, item)
		if err != nil {
			return err
		}
		*pairs = append(*pairs, queryPair{key + "[" + strconv.Itoa(i) + "]", s})
	}
	return nil
}

type condition struct {
	condition string
	value     string
}

func fieldConditions(field string, value any) ([]condition, error) {
	switch v := value.(type) {
	case map[string]any:
		conditions := make([]condition, 0, len(v))
		for _, name := range sortedKeys(v) {
			s, err := joinedValue(field, v[name])
			if err != nil {
				return nil, err
			}
			conditions = append(conditions, condition{name, s})
		}
		return conditions, nil
	case []any:
		s, err := joinedValue(field, v)
		if err != nil {
			return nil, err
		}
		return []condition{{ConditionIn, s}}, nil
	case nil:
		return []condition{{ConditionNull, ""}}, nil
	default:
		s, err := scalarString(field, v)
		if err != nil {
			return nil, err
		}
		return []condition{{ConditionEq, s}}, nil
	}
}

// normalizeCriteria round-trips params through JSON so typed structs, slices of any element type and
// maps with string-like keys all reduce to map[string]any, []any and scalars.
func normalizeCriteria(params SearchCriteria) (map[string]any, error) {
	data, err := criteriaJSON.Marshal(params)
	if err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("encode search criteria").
			Mark(clienterrors.ErrRequestEncoding)
	}

	tree := map[string]any{}
	if err := criteriaJSON.Unmarshal(data, &tree); err != nil {
		return nil, clienterrors.WithError(err).
			WithMessage("decode search criteria").
			Mark(clienterrors.ErrRequestEncoding)
	}
	return tree, nil
}

func renameStructuredKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		renamed := make(map[string]any, len(v))
		for key, child := range v {
			if alias, ok := structuredKeyAliases[key]; ok {
				key = alias
			}
			renamed[key] = renameStructuredKeys(child)
		}
		return renamed
	case []any:
		renamed := make([]any, len(v))
		for i, child := range v {
			renamed[i] = renameStructuredKeys(child)
		}
		return renamed
	default:
		return v
	}
}

func flattenCriteria(prefix, key string, value any, pairs *[]queryPair) error {
	switch v := value.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if err := flattenCriteria(prefix+"["+k+"]", k, v[k], pairs); err != nil {
				return err
			}
		}
	case []any:
		if key == "value" {
			s, err := joinedValue(prefix, v)
			if err != nil {
				return err
			}
			*pairs = append(*pairs, queryPair{prefix, s})
			return nil
		}
		for i, item := range v {
			if err := flattenCriteria(prefix+"["+strconv.Itoa(i)+"]", "", item, pairs); err != nil {
				return err
			}
		}
	default:
		s, err := scalarString(prefix, v)
		if err != nil {
			return err
		}
		*pairs = append(*pairs, queryPair{prefix, s})
	}
	return nil
}

func joinedValue(field string, value any) (string, error) {
	list, ok := value.([]any)
	if !ok {
		return scalarString(field, value)
	}
	parts := make([]string, len(list))
	for i, item := range list {
		s, err := scalarString(field, item)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}

func scalarString(field string, value any) (string, error) {
	switch value.(type) {
	case map[string]any, []any:
		return "", clienterrors.NewErrorf("search criteria value for %q must be a scalar", field).
			Mark(clienterrors.ErrRequestEncoding)
	case nil:
		return "", nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", clienterrors.WithError(err).
			WithMessage("search criteria value for " + field).
			Mark(clienterrors.ErrRequestEncoding)
	}
	return s, nil
}

func sortedKeys(m map[string]any) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// joinQueryPairs renders pairs with the same encoding the signer's canonical form uses, so the
// fragment survives canonicalisation byte for byte.
func joinQueryPairs(pairs []queryPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = authenticationhandler.EncodeQueryComponent(p.key) + "=" + authenticationhandler.EncodeQueryComponent(p.value)
	}
	return strings.Join(parts, "&")
}
