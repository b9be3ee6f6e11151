package ds

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Ref is an identifier the backend sends either as a number or as a string.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Ref(n.String())
	return nil
}

func (r Ref) String() string { return string(r) }

type PlanImage struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

// Plan is the backend's plan representation. The storefront never mutates it.
type Plan struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	PriceWithTax float64     `json:"price_with_tax"`
	Membership   Ref         `json:"membership"`
	Slot         int         `json:"slot"`
	Images       []PlanImage `json:"images"`
}

// InSlot reports whether the plan still has free slots.
func (p Plan) InSlot() bool {
	return p.Slot > 0
}

// Cover returns the first image or the placeholder used by the storefront.
func (p Plan) Cover() string {
	if len(p.Images) > 0 && p.Images[0].Image != "" {
		return p.Images[0].Image
	}
	return DefaultPlanImage
}

const DefaultPlanImage = "/default-plan.jpg"

type Membership struct {
	ID          Ref    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PlanCount   int    `json:"plan_count"`
	ClassCount  int    `json:"class_count,omitempty"`
}

// PlanPage is the DRF list envelope returned by GET /plans/.
type PlanPage struct {
	Count   int64  `json:"count"`
	Results []Plan `json:"results"`
}

// PlanDetail is a plan together with the reviews written for it.
type PlanDetail struct {
	Plan
	InStock     bool     `json:"in_slot"`
	CoverImage  string   `json:"cover_image"`
	Reviews     []Review `json:"reviews"`
	ReviewCount int      `json:"review_count"`
	Rating      float64  `json:"average_rating"`
}

// ParseID accepts only positive numeric plan ids.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
