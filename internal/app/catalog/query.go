package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// PriceUpperBound is the highest price the range filter can select.
	PriceUpperBound = 1000
	// PriceMinGap is the smallest allowed distance between the two bounds.
	PriceMinGap = 10
	// PriceStep is the slider granularity.
	PriceStep = 5
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

var sortOrdering = map[SortKey]string{
	SortNone:      "",
	SortPriceAsc:  "price",
	SortPriceDesc: "-price",
	SortNameAsc:   "name",
	SortNameDesc:  "-name",
}

// Ordering returns the backend ordering token; descending keys carry a "-" prefix.
func (k SortKey) Ordering() string {
	return sortOrdering[k.normalize()]
}

func (k SortKey) normalize() SortKey {
	if _, ok := sortOrdering[k]; ok {
		return k
	}
	return SortNone
}

// ParseSortKey accepts either a key name or a backend ordering token.
// Anything unrecognised is SortNone.
func ParseSortKey(raw string) SortKey {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortNone
	}
	if _, ok := sortOrdering[SortKey(raw)]; ok {
		return SortKey(raw)
	}
	for key, token := range sortOrdering {
		if token != "" && token == raw {
			return key
		}
	}
	return SortNone
}

// QueryState is the set of filter, sort and page selections that drive a catalog query.
type QueryState struct {
	PriceMin     int     `json:"price_min"`
	PriceMax     int     `json:"price_max"`
	MembershipID string  `json:"membership_id"`
	Search       string  `json:"search"`
	Sort         SortKey `json:"sort"`
	Page         int     `json:"page"`
}

// DefaultQuery is the state a freshly mounted catalog starts from.
func DefaultQuery() QueryState {
	return QueryState{
		PriceMin: 0,
		PriceMax: PriceUpperBound,
		Sort:     SortNone,
		Page:     1,
	}
}

// IsDefaultPrice reports whether the full price range is selected.
func (q QueryState) IsDefaultPrice() bool {
	return q.PriceMin == 0 && q.PriceMax == PriceUpperBound
}

// Normalized repairs a state built outside the intents (decoded JSON, literals)
// so that every invariant holds.
func (q QueryState) Normalized() QueryState {
	q.PriceMax = clamp(q.PriceMax, PriceMinGap, PriceUpperBound)
	q.PriceMin = clamp(q.PriceMin, 0, q.PriceMax-PriceMinGap)
	q.MembershipID = strings.TrimSpace(q.MembershipID)
	q.Sort = q.Sort.normalize()
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Intent is a named request to change one dimension of a QueryState.
type Intent interface {
	apply(QueryState) QueryState
	Name() string
}

// SetPriceRange moves one bound: Index 0 is the minimum, anything else the maximum.
type SetPriceRange struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

func (i SetPriceRange) Name() string { return "set_price_range" }

func (i SetPriceRange) apply(q QueryState) QueryState {
	if i.Index == 0 {
		q.PriceMin = clamp(i.Value, 0, q.PriceMax-PriceMinGap)
	} else {
		q.PriceMax = clamp(i.Value, q.PriceMin+PriceMinGap, PriceUpperBound)
	}
	return q
}

// ClearPrice restores the full default price range.
type ClearPrice struct{}

func (ClearPrice) Name() string { return "clear_price" }

func (ClearPrice) apply(q QueryState) QueryState {
	q.PriceMin, q.PriceMax = 0, PriceUpperBound
	return q
}

// SetMembership filters by membership id; an empty id means all memberships.
type SetMembership struct {
	ID string `json:"id"`
}

func (SetMembership) Name() string { return "set_membership" }

func (i SetMembership) apply(q QueryState) QueryState {
	q.MembershipID = strings.TrimSpace(i.ID)
	return q
}

type SetSearch struct {
	Text string `json:"text"`
}

func (SetSearch) Name() string { return "set_search" }

func (i SetSearch) apply(q QueryState) QueryState {
	q.Search = i.Text
	return q
}

type SetSort struct {
	Key SortKey `json:"key"`
}

func (SetSort) Name() string { return "set_sort" }

func (i SetSort) apply(q QueryState) QueryState {
	q.Sort = i.Key.normalize()
	return q
}

// SetPage is the only intent that keeps the page it sets.
type SetPage struct {
	Page int `json:"page"`
}

func (SetPage) Name() string { return "set_page" }

func (i SetPage) apply(q QueryState) QueryState {
	q.Page = i.Page
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Reset restores every field to its default.
type Reset struct{}

func (Reset) Name() string { return "reset" }

func (Reset) apply(QueryState) QueryState {
	return DefaultQuery()
}

// Apply returns the state produced by the intent. Every intent other than
// SetPage sends the catalog back to the first page.
func Apply(q QueryState, in Intent) QueryState {
	if in == nil {
		return q
	}
	next := in.apply(q)
	if _, ok := in.(SetPage); !ok {
		next.Page = 1
	}
	return next
}

// Query string keys used by the storefront links.
const (
	ParamPriceMin   = "price_min"
	ParamPriceMax   = "price_max"
	ParamMembership = "membership"
	ParamSearch     = "search"
	ParamSort       = "sort"
	ParamPage       = "page"
)

// Values encodes the non-default fields of q as storefront link parameters.
func (q QueryState) Values() url.Values {
	v := url.Values{}
	if q.PriceMin != 0 {
		v.Set(ParamPriceMin, strconv.Itoa(q.PriceMin))
	}
	if q.PriceMax != PriceUpperBound {
		v.Set(ParamPriceMax, strconv.Itoa(q.PriceMax))
	}
	if q.MembershipID != "" {
		v.Set(ParamMembership, q.MembershipID)
	}
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	if q.Sort != SortNone && q.Sort != "" {
		v.Set(ParamSort, string(q.Sort))
	}
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// ParseQuery decodes storefront link parameters. Every field goes through its
// intent, so malformed or out-of-range input is clamped instead of rejected.
func ParseQuery(v url.Values) QueryState {
	q := DefaultQuery()
	if raw := v.Get(ParamPriceMin); raw != "" {
		q = Apply(q, SetPriceRange{Index: 0, Value: CoercePrice(raw, q.PriceMin)})
	}
	if raw := v.Get(ParamPriceMax); raw != "" {
		q = Apply(q, SetPriceRange{Index: 1, Value: CoercePrice(raw, q.PriceMax)})
	}
	if raw := v.Get(ParamMembership); raw != "" {
		q = Apply(q, SetMembership{ID: raw})
	}
	if raw := v.Get(ParamSearch); raw != "" {
		q = Apply(q, SetSearch{Text: raw})
	}
	if raw := v.Get(ParamSort); raw != "" {
		q = Apply(q, SetSort{Key: ParseSortKey(raw)})
	}
	if raw := v.Get(ParamPage); raw != "" {
		if page, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			q = Apply(q, SetPage{Page: page})
		}
	}
	return q
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
