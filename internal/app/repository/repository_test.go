package repository

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/ds"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBackend() *fakeBackend {
	return &fakeBackend{
		plans: []ds.Plan{
			{ID: 1, Name: "Starter", Price: 20, Slot: 4, Membership: "1"},
			{ID: 2, Name: "Pro", Price: 60, Slot: 0, Membership: "2", Images: []ds.PlanImage{{ID: 1, Image: "https://img/pro.jpg"}}},
			{ID: 3, Name: "Elite", Price: 120, Slot: 1, Membership: "2"},
		},
		count:       23,
		memberships: []ds.Membership{{ID: "1", Name: "Basic"}, {ID: "2", Name: "Premium"}},
		reviews: []ds.Review{
			{ID: 1, Rating: 5, Comment: "Loved the coaches", User: &ds.ReviewUser{Name: "Mia"}, Plan: &ds.ReviewPlan{ID: 2, Name: "Pro"}},
			{ID: 2, Rating: 4, Comment: "Solid", User: &ds.ReviewUser{Name: "Leo"}, Plan: &ds.ReviewPlan{ID: 2, Name: "Pro"}},
			{ID: 3, Rating: 4, Comment: "good value", User: &ds.ReviewUser{Name: "Ava"}, Plan: &ds.ReviewPlan{ID: 2, Name: "Pro"}},
			{ID: 4, Rating: 3, Comment: "crowded", User: &ds.ReviewUser{Name: "Sam"}, Plan: &ds.ReviewPlan{ID: 1, Name: "Starter"}},
			{ID: 5, Rating: 2, Comment: "no plan"},
		},
		user: ds.User{ID: 7, Email: "mia@example.com", FirstName: "Mia"},
	}
}

func newTestRepo(b *fakeBackend) *Repository {
	return New(b, NewMemoryStore(), Options{PageSize: 10})
}

func TestMembershipsAreCached(t *testing.T) {
	b := sampleBackend()
	repo := newTestRepo(b)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := repo.Membership.List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	assert.EqualValues(t, 1, b.membershipCalls)
	assert.Equal(t, "Premium", repo.Membership.Name(ctx, "2"))
	assert.Equal(t, "8", repo.Membership.Name(ctx, "8"))

	require.NoError(t, repo.Membership.Invalidate(ctx))
	_, err := repo.Membership.List(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, b.membershipCalls)
}

func TestConcurrentMembershipFillsCollapse(t *testing.T) {
	b := sampleBackend()
	b.block = make(chan struct{})
	repo := newTestRepo(b)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Membership.List(context.Background())
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(b.block)
	wg.Wait()
	assert.EqualValues(t, 1, b.membershipCalls)
}

func TestCancelledCallerDoesNotFailSharedFill(t *testing.T) {
	b := sampleBackend()
	b.block = make(chan struct{})
	repo := newTestRepo(b)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := repo.Membership.List(leaderCtx)
		leaderErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	type listResult struct {
		memberships []ds.Membership
		err         error
	}
	follower := make(chan listResult, 1)
	go func() {
		got, err := repo.Membership.List(context.Background())
		follower <- listResult{got, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(b.block)
	res := <-follower
	require.NoError(t, res.err)
	assert.Len(t, res.memberships, 2)
	assert.EqualValues(t, 1, b.membershipCalls)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.NoError(t, b.fillCtxErr)
}

func TestMembershipErrorIsNotCached(t *testing.T) {
	b := sampleBackend()
	b.membershipsErr = errors.New("down")
	repo := newTestRepo(b)

	_, err := repo.Membership.List(context.Background())
	require.Error(t, err)

	b.membershipsErr = nil
	got, err := repo.Membership.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogSnapshot(t *testing.T) {
	b := sampleBackend()
	repo := newTestRepo(b)

	q := catalog.Apply(catalog.DefaultQuery(), catalog.SetMembership{ID: "2"})
	q = catalog.Apply(q, catalog.SetPage{Page: 2})
	s := repo.Plan.Catalog(context.Background(), q)

	assert.Equal(t, catalog.StateReady, s.State)
	assert.Len(t, s.Items, 3)
	assert.Equal(t, 3, s.Pagination.TotalPages)
	assert.Equal(t, "1 [2] 3", s.Pager.String())
	require.Len(t, s.Badges, 1)
	assert.Equal(t, "Membership: Premium", s.Badges[0].Label)
	assert.Equal(t, "2", b.lastParams.Get("membership_id"))
	assert.Equal(t, "2", b.lastParams.Get("page"))
}

func TestCatalogSurvivesMembershipFailure(t *testing.T) {
	b := sampleBackend()
	b.membershipsErr = errors.New("down")
	s := newTestRepo(b).Plan.Catalog(context.Background(), catalog.Apply(catalog.DefaultQuery(), catalog.SetMembership{ID: "2"}))
	assert.Equal(t, catalog.StateReady, s.State)
	assert.Equal(t, "Membership: 2", s.Badges[0].Label)
}

func TestCatalogFailure(t *testing.T) {
	b := sampleBackend()
	b.plansErr = errors.New("connection reset")
	s := newTestRepo(b).Plan.Catalog(context.Background(), catalog.DefaultQuery())
	assert.Equal(t, catalog.StateError, s.State)
	assert.Empty(t, s.Items)
	require.NotNil(t, s.Notice)
}

func TestPlanDetail(t *testing.T) {
	repo := newTestRepo(sampleBackend())
	d, err := repo.Plan.Detail(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Pro", d.Name)
	assert.False(t, d.InStock)
	assert.Equal(t, "https://img/pro.jpg", d.CoverImage)
	assert.Len(t, d.Reviews, 3)
	assert.Equal(t, 3, d.ReviewCount)
	assert.Equal(t, 4.3, d.Rating)
}

func TestPlanDetailWithoutReviews(t *testing.T) {
	b := sampleBackend()
	b.reviewsErr = errors.New("timeout")
	d, err := newTestRepo(b).Plan.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, d.Reviews)
	assert.Equal(t, ds.DefaultPlanImage, d.CoverImage)
	assert.True(t, d.InStock)
}

func TestPlanDetailNotFound(t *testing.T) {
	_, err := newTestRepo(sampleBackend()).Plan.Detail(context.Background(), 42)
	assert.True(t, backend.IsNotFound(err))
}

func TestFilterReviews(t *testing.T) {
	reviews := sampleBackend().reviews

	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{}), 5)
	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{PlanID: 2}), 3)
	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{Rating: 4}), 2)
	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{PlanID: 2, Rating: 4}), 2)

	bySearch := FilterReviews(reviews, ds.ReviewFilters{Search: "MIA"})
	require.Len(t, bySearch, 1)
	assert.EqualValues(t, 1, bySearch[0].ID)

	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{Search: "starter"}), 1)
	assert.Len(t, FilterReviews(reviews, ds.ReviewFilters{Search: "value"}), 1)
}

func TestTopPlans(t *testing.T) {
	b := sampleBackend()
	stats := PlanStats(b.plans, b.reviews)
	require.Len(t, stats, 3)
	assert.Equal(t, 0, stats[2].ReviewCount)

	top := TopPlans(stats, TopPlansLimit)
	require.Len(t, top, 2)
	assert.Equal(t, "Pro", top[0].Name)
	assert.Equal(t, 4.3, top[0].AverageRating)
	assert.Equal(t, 3.0, top[1].AverageRating)

	assert.Len(t, TopPlans(stats, 1), 1)
}

func TestReviewList(t *testing.T) {
	resp, err := newTestRepo(sampleBackend()).Review.List(context.Background(), ds.ReviewFilters{Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.TopPlans, 2)
	assert.Equal(t, 5, resp.Filters.Rating)
}

func TestCart(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(sampleBackend())

	_, err := repo.Cart.Add(ctx, 7, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = repo.Cart.Add(ctx, 7, 3, 1)
	require.NoError(t, err)
	cart, err := repo.Cart.Add(ctx, 7, 2, 2)
	require.NoError(t, err)
	cart, err = repo.Cart.Add(ctx, 7, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []ds.CartItem{{PlanID: 2, Quantity: 3}, {PlanID: 3, Quantity: 1}}, cart.Items)
	assert.Equal(t, 4, cart.ItemCount)

	cart, err = repo.Cart.Remove(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)

	other, err := repo.Cart.Get(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	require.NoError(t, repo.Cart.Clear(ctx, 7))
	cart, _ = repo.Cart.Get(ctx, 7)
	assert.Zero(t, cart.ItemCount)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(sampleBackend())

	session, err := repo.Session.Login(ctx, "mia@example.com", "Secret123!", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.EqualValues(t, 7, session.User.ID)

	stored, err := repo.Session.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "backend-access", stored.Backend.Access)

	renewed, err := repo.Session.RenewBackend(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, "backend-access-2", renewed.Backend.Access)

	require.NoError(t, repo.Session.SaveRefreshToken(ctx, session.ID, "r1"))
	ok, err := repo.Session.RefreshTokenMatches(ctx, session.ID, "r1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = repo.Session.RefreshTokenMatches(ctx, session.ID, "r0")
	assert.False(t, ok)

	require.NoError(t, repo.Session.Delete(ctx, session.ID))
	_, err = repo.Session.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	ok, _ = repo.Session.RefreshTokenMatches(ctx, session.ID, "r1")
	assert.False(t, ok)
}

func TestLoginRejected(t *testing.T) {
	b := sampleBackend()
	b.tokenErr = &backend.APIError{Status: 401, Detail: "No active account found with the given credentials"}
	_, err := newTestRepo(b).Session.Login(context.Background(), "x@y.z", "bad", "")
	assert.True(t, backend.IsUnauthorized(err))
}

func TestBlacklist(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(sampleBackend())

	require.NoError(t, repo.Session.Blacklist(ctx, "tok", time.Now().Add(time.Hour)))
	ok, err := repo.Session.IsBlacklisted(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Session.Blacklist(ctx, "expired", time.Now().Add(-time.Minute)))
	ok, _ = repo.Session.IsBlacklisted(ctx, "expired")
	assert.False(t, ok)
}
