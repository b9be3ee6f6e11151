package ds

import "time"

type ReviewUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ReviewPlan struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID           uint        `json:"id"`
	Rating       int         `json:"rating"`
	Comment      string      `json:"comment"`
	HelpfulCount int         `json:"helpful_count"`
	User         *ReviewUser `json:"user,omitempty"`
	Plan         *ReviewPlan `json:"plan,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// PlanID returns the reviewed plan id or 0 for reviews without a plan.
func (r Review) PlanID() uint {
	if r.Plan == nil {
		return 0
	}
	return r.Plan.ID
}

// PlanStats is the per-plan rating summary shown next to the review list.
type PlanStats struct {
	PlanID        uint    `json:"plan_id"`
	Name          string  `json:"name"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewsResponse struct {
	Reviews  []Review       `json:"reviews"`
	Count    int            `json:"count"`
	TopPlans []PlanStats    `json:"top_plans"`
	Filters  *ReviewFilters `json:"filters,omitempty"`
}

// ReviewFilters mirrors the filters applied to a review listing.
type ReviewFilters struct {
	PlanID uint   `json:"plan_id,omitempty"`
	Rating int    `json:"rating,omitempty"`
	Search string `json:"search,omitempty"`
}
