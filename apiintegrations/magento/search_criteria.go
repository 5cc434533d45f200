// apiintegrations/magento/search_criteria.go
package magento

// SearchCriteria is the loosely typed filter, sort and pagination input of a GET request.
// Its keys decide which encoding is used, see SelectStrategy. A nil SearchCriteria means
// "no criteria", which is not the same as an empty one.
type SearchCriteria map[string]any

// Condition types understood by the store's filter builder.
const (
	ConditionEq      = "eq"
	ConditionNeq     = "neq"
	ConditionLike    = "like"
	ConditionNlike   = "nlike"
	ConditionIn      = "in"
	ConditionNin     = "nin"
	ConditionGt      = "gt"
	ConditionGteq    = "gteq"
	ConditionLt      = "lt"
	ConditionLteq    = "lteq"
	ConditionNull    = "null"
	ConditionNotNull = "notnull"
	ConditionFrom    = "from"
	ConditionTo      = "to"
	ConditionFinset  = "finset"
)

// Sort directions.
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Filter is one condition on one field. A slice Value is sent comma-joined.
type Filter struct {
	Field         string `json:"field"`
	Value         any    `json:"value"`
	ConditionType string `json:"condition_type,omitempty"`
}

// FilterGroup ORs its filters together. Groups are ANDed.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

// SortOrder orders the result set by one field.
type SortOrder struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// Criteria is the typed form of a structured search. Use NewSearchCriteria to build one.
type Criteria struct {
	FilterGroups []FilterGroup
	SortOrders   []SortOrder
	PageSize     int
	CurrentPage  int
}

// CriteriaOption configures a Criteria.
type CriteriaOption func(*Criteria)

// WithFilterGroup adds a group of ORed filters.
func WithFilterGroup(filters ...Filter) CriteriaOption {
	return func(c *Criteria) {
		c.FilterGroups = append(c.FilterGroups, FilterGroup{Filters: filters})
	}
}

// WithSortOrder appends a sort order.
func WithSortOrder(field, direction string) CriteriaOption {
	return func(c *Criteria) {
		c.SortOrders = append(c.SortOrders, SortOrder{Field: field, Direction: direction})
	}
}

// WithPageSize sets the page size.
func WithPageSize(size int) CriteriaOption {
	return func(c *Criteria) {
		c.PageSize = size
	}
}

// WithCurrentPage sets the 1-based page number.
func WithCurrentPage(page int) CriteriaOption {
	return func(c *Criteria) {
		c.CurrentPage = page
	}
}

// NewSearchCriteria builds structured search criteria from typed options. The result always selects
// the structured encoding on current generation stores unless no option set anything.
func NewSearchCriteria(opts ...CriteriaOption) SearchCriteria {
	var c Criteria
	for _, opt := range opts {
		opt(&c)
	}
	return c.SearchCriteria()
}

// SearchCriteria converts c into its map form. Zero fields are omitted.
func (c Criteria) SearchCriteria() SearchCriteria {
	sc := SearchCriteria{}
	if len(c.FilterGroups) > 0 {
		sc["filter_groups"] = c.FilterGroups
	}
	if len(c.SortOrders) > 0 {
		sc["sort_orders"] = c.SortOrders
	}
	if c.PageSize > 0 {
		sc["page_size"] = c.PageSize
	}
	if c.CurrentPage > 0 {
		sc["current_page"] = c.CurrentPage
	}
	return sc
}
