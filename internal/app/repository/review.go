package repository

import (
	"algofit-storefront/internal/app/ds"
	"context"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TopPlansLimit is how many rated plans the review page highlights.
const TopPlansLimit = 5

const ReviewsFailedMessage = "Failed to load reviews. Please try again."

type ReviewRepository struct {
	backend Backend
}

func NewReviewRepository(b Backend) *ReviewRepository {
	return &ReviewRepository{backend: b}
}

// List loads reviews and plans together, then filters the reviews and
// ranks the plans by average rating.
func (r *ReviewRepository) List(ctx context.Context, filters ds.ReviewFilters) (ds.ReviewsResponse, error) {
	var (
		reviews []ds.Review
		plans   []ds.Plan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = r.backend.ListReviews(gctx)
		return err
	})
	g.Go(func() error {
		page, err := r.backend.ListPlans(gctx, nil)
		plans = page.Results
		return err
	})
	if err := g.Wait(); err != nil {
		return ds.ReviewsResponse{}, err
	}

	filtered := FilterReviews(reviews, filters)
	return ds.ReviewsResponse{
		Reviews:  filtered,
		Count:    len(filtered),
		TopPlans: TopPlans(PlanStats(plans, reviews), TopPlansLimit),
		Filters:  &filters,
	}, nil
}

// FilterReviews keeps reviews matching every set filter. Search is a
// case-insensitive substring match on the comment, reviewer name or plan name.
func FilterReviews(reviews []ds.Review, f ds.ReviewFilters) []ds.Review {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]ds.Review, 0, len(reviews))
	for _, review := range reviews {
		if f.PlanID != 0 && review.PlanID() != f.PlanID {
			continue
		}
		if f.Rating != 0 && review.Rating != f.Rating {
			continue
		}
		if search != "" && !reviewMatches(review, search) {
			continue
		}
		out = append(out, review)
	}
	return out
}

func reviewMatches(review ds.Review, search string) bool {
	if strings.Contains(strings.ToLower(review.Comment), search) {
		return true
	}
	if review.User != nil && strings.Contains(strings.ToLower(review.User.Name), search) {
		return true
	}
	return review.Plan != nil && strings.Contains(strings.ToLower(review.Plan.Name), search)
}

// StatsFor summarises the reviews of one plan.
func StatsFor(plan ds.Plan, reviews []ds.Review) ds.PlanStats {
	stats := ds.PlanStats{PlanID: plan.ID, Name: plan.Name}
	sum := 0
	for _, review := range reviews {
		if review.PlanID() != plan.ID {
			continue
		}
		stats.ReviewCount++
		sum += review.Rating
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = roundTenth(float64(sum) / float64(stats.ReviewCount))
	}
	return stats
}

// PlanStats computes StatsFor every plan, in plan order.
func PlanStats(plans []ds.Plan, reviews []ds.Review) []ds.PlanStats {
	out := make([]ds.PlanStats, 0, len(plans))
	for _, plan := range plans {
		out = append(out, StatsFor(plan, reviews))
	}
	return out
}

// TopPlans returns up to limit reviewed plans, best average first.
func TopPlans(stats []ds.PlanStats, limit int) []ds.PlanStats {
	out := make([]ds.PlanStats, 0, len(stats))
	for _, s := range stats {
		if s.ReviewCount > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
