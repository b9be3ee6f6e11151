package repository

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/ds"
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PlanRepository serves catalog pages and plan detail.
type PlanRepository struct {
	backend     Backend
	fetcher     *catalog.ResultFetcher
	memberships *MembershipRepository
	reviews     *ReviewRepository
	opts        Options
}

func NewPlanRepository(b Backend, memberships *MembershipRepository, reviews *ReviewRepository, opts Options) *PlanRepository {
	return &PlanRepository{
		backend:     b,
		fetcher:     catalog.NewResultFetcher(b, opts.PageSize),
		memberships: memberships,
		reviews:     reviews,
		opts:        opts,
	}
}

// Fetch implements catalog.Fetcher.
func (r *PlanRepository) Fetch(ctx context.Context, q catalog.QueryState) (catalog.Result, error) {
	return r.fetcher.Fetch(ctx, q)
}

func (r *PlanRepository) PageSize() int { return r.fetcher.PageSize() }

// NewView returns a catalog view for q labelled with the current memberships.
// A membership lookup failure only costs the badge its display name.
func (r *PlanRepository) NewView(ctx context.Context, q catalog.QueryState) *catalog.View {
	memberships, err := r.memberships.List(ctx)
	if err != nil {
		logrus.Warnf("memberships unavailable for catalog badges: %v", err)
	}
	return catalog.NewView(
		catalog.WithQuery(q),
		catalog.WithPagerCounts(r.opts.SiblingCount, r.opts.BoundaryCount),
		catalog.WithMemberships(memberships),
	)
}

// Catalog loads one catalog page for q.
func (r *PlanRepository) Catalog(ctx context.Context, q catalog.QueryState) catalog.Snapshot {
	view := r.NewView(ctx, q)
	snapshot := view.Load(ctx, r)
	if snapshot.State == catalog.StateError {
		logrus.Errorf("catalog fetch failed for %s: %s", q.Values().Encode(), snapshot.Message)
	}
	return snapshot
}

// Detail fetches a plan together with its reviews. Reviews are best effort:
// the plan is still served when they cannot be loaded.
func (r *PlanRepository) Detail(ctx context.Context, id uint) (ds.PlanDetail, error) {
	var (
		plan    ds.Plan
		reviews []ds.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plan, err = r.backend.GetPlan(gctx, id)
		return err
	})
	g.Go(func() error {
		all, err := r.backend.ListReviews(gctx)
		if err != nil {
			logrus.Warnf("reviews unavailable for plan %d: %v", id, err)
			return nil
		}
		reviews = FilterReviews(all, ds.ReviewFilters{PlanID: id})
		return nil
	})
	if err := g.Wait(); err != nil {
		return ds.PlanDetail{}, err
	}

	stats := StatsFor(plan, reviews)
	return ds.PlanDetail{
		Plan:        plan,
		InStock:     plan.InSlot(),
		CoverImage:  plan.Cover(),
		Reviews:     reviews,
		ReviewCount: stats.ReviewCount,
		Rating:      stats.AverageRating,
	}, nil
}
