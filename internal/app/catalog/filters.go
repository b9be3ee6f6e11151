package catalog

import (
	"algofit-storefront/internal/app/ds"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoercePrice turns raw control input into a price. Input that is not a
// number keeps the current value; fractions are rounded.
func CoercePrice(raw string, current int) int {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if raw == "" {
		return current
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return current
	}
	return int(math.Round(f))
}

// PreClamp snaps a slider value to PriceStep and keeps it inside the bounds
// the slider currently allows. QueryState still clamps authoritatively.
func PreClamp(q QueryState, index, value int) int {
	value = int(math.Round(float64(value)/PriceStep)) * PriceStep
	if index == 0 {
		return clamp(value, 0, q.PriceMax-PriceMinGap)
	}
	return clamp(value, q.PriceMin+PriceMinGap, PriceUpperBound)
}

// PriceIntent converts typed price input into its intent. Typed values are
// not snapped to PriceStep; only the slider keys are.
func PriceIntent(q QueryState, index int, raw string) SetPriceRange {
	current := q.PriceMin
	if index != 0 {
		current = q.PriceMax
	}
	return SetPriceRange{Index: index, Value: CoercePrice(raw, current)}
}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Key   SortKey `json:"key"`
	Label string  `json:"label"`
}

var sortOptions = []SortOption{
	{Key: SortNone, Label: "Default"},
	{Key: SortPriceAsc, Label: "Price: Low to High"},
	{Key: SortPriceDesc, Label: "Price: High to Low"},
	{Key: SortNameAsc, Label: "Name: A to Z"},
	{Key: SortNameDesc, Label: "Name: Z to A"},
}

func SortOptions() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

// SortLabel is the short label used on the active sort badge.
func SortLabel(k SortKey) string {
	switch k.normalize() {
	case SortPriceAsc:
		return "Low to High"
	case SortPriceDesc:
		return "High to Low"
	case SortNameAsc:
		return "A to Z"
	case SortNameDesc:
		return "Z to A"
	}
	return "Default"
}

// NextSort cycles through the sort options in display order.
func NextSort(k SortKey) SortKey {
	k = k.normalize()
	for i, opt := range sortOptions {
		if opt.Key == k {
			return sortOptions[(i+1)%len(sortOptions)].Key
		}
	}
	return SortNone
}

type BadgeKind string

const (
	BadgePrice      BadgeKind = "price"
	BadgeMembership BadgeKind = "membership"
	BadgeSearch     BadgeKind = "search"
	BadgeSort       BadgeKind = "sort"
)

// Badge summarises one non-default filter and carries the intent that clears it.
type Badge struct {
	Kind  BadgeKind `json:"kind"`
	Label string    `json:"label"`
	Clear Intent    `json:"-"`
}

func (b Badge) MarshalJSON() ([]byte, error) {
	type badge Badge
	return json.Marshal(struct {
		badge
		Clear IntentPayload `json:"clear"`
	}{badge: badge(b), Clear: EncodeIntent(b.Clear)})
}

// Badges lists the active filters of q in display order.
func Badges(q QueryState, memberships []ds.Membership) []Badge {
	badges := make([]Badge, 0, 4)
	if !q.IsDefaultPrice() {
		badges = append(badges, Badge{
			Kind:  BadgePrice,
			Label: fmt.Sprintf("Price: $%d - $%d", q.PriceMin, q.PriceMax),
			Clear: ClearPrice{},
		})
	}
	if q.MembershipID != "" {
		badges = append(badges, Badge{
			Kind:  BadgeMembership,
			Label: "Membership: " + MembershipName(memberships, q.MembershipID),
			Clear: SetMembership{ID: ""},
		})
	}
	if q.Search != "" {
		badges = append(badges, Badge{
			Kind:  BadgeSearch,
			Label: "Search: " + q.Search,
			Clear: SetSearch{Text: ""},
		})
	}
	if s := q.Sort.normalize(); s != SortNone {
		badges = append(badges, Badge{
			Kind:  BadgeSort,
			Label: "Sort: " + SortLabel(s),
			Clear: SetSort{Key: SortNone},
		})
	}
	return badges
}

// MembershipName resolves a membership id to its display name, falling back to the id.
func MembershipName(memberships []ds.Membership, id string) string {
	for _, m := range memberships {
		if m.ID.String() == id {
			return m.Name
		}
	}
	return id
}
