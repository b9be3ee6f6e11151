package catalog

import (
	"algofit-storefront/internal/app/alert"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/metrics"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, q QueryState) (Result, error)

func (f fetchFunc) Fetch(ctx context.Context, q QueryState) (Result, error) { return f(ctx, q) }

func readyResult(n int, total int64) Result {
	return Result{Items: plans(n), TotalCount: total, PageSize: 10, TotalPages: ds.TotalPages(total, 10)}
}

func TestViewStartsOnce(t *testing.T) {
	v := NewView()
	assert.Equal(t, StateInitial, v.State())

	tk, ok := v.Start()
	require.True(t, ok)
	assert.Equal(t, StateLoading, v.State())
	assert.Equal(t, DefaultQuery(), tk.Query)

	_, ok = v.Start()
	assert.False(t, ok)
}

func TestViewResolveStates(t *testing.T) {
	v := NewView()
	tk, _ := v.Start()
	require.True(t, v.Resolve(tk, readyResult(10, 42), nil))
	assert.Equal(t, StateReady, v.State())

	tk, ok := v.Dispatch(SetSearch{Text: "nothing"})
	require.True(t, ok)
	require.True(t, v.Resolve(tk, Result{Items: []ds.Plan{}}, nil))
	assert.Equal(t, StateEmpty, v.State())

	tk, _ = v.Dispatch(SetSearch{Text: "boom"})
	require.True(t, v.Resolve(tk, Result{}, errors.New("down")))
	assert.Equal(t, StateError, v.State())
}

func TestViewEmptyCountIsEmptyNotError(t *testing.T) {
	f := NewResultFetcher(&stubSource{page: ds.PlanPage{Count: 0, Results: []ds.Plan{}}}, 10)
	s := NewView().Load(context.Background(), f)

	assert.Equal(t, StateEmpty, s.State)
	assert.Zero(t, s.Pagination.TotalPages)
	assert.False(t, s.Pager.Visible)
	assert.Equal(t, EmptyMessage, s.Message)
	assert.Nil(t, s.Notice)
}

func TestViewRejectsStaleResponse(t *testing.T) {
	v := NewView()
	v.Start()
	tkA, _ := v.Dispatch(SetMembership{ID: "1"})
	tkB, _ := v.Dispatch(SetMembership{ID: "2"})
	require.Greater(t, tkB.Generation, tkA.Generation)

	before := testutil.ToFloat64(metrics.CatalogStaleResponsesTotal)

	// B resolves first, A arrives late.
	resB := readyResult(2, 2)
	resA := readyResult(7, 7)
	assert.True(t, v.Resolve(tkB, resB, nil))
	assert.False(t, v.Resolve(tkA, resA, nil))

	s := v.Snapshot()
	assert.Equal(t, StateReady, s.State)
	assert.Len(t, s.Items, 2)
	assert.Equal(t, "2", s.Query.MembershipID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CatalogStaleResponsesTotal))
}

func TestViewRejectsStaleResponseInOrder(t *testing.T) {
	v := NewView()
	v.Start()
	tkA, _ := v.Dispatch(SetSort{Key: SortPriceAsc})
	tkB, _ := v.Dispatch(SetSort{Key: SortPriceDesc})

	assert.False(t, v.Resolve(tkA, readyResult(7, 7), nil))
	assert.Equal(t, StateLoading, v.State())
	assert.Empty(t, v.Snapshot().Items)

	assert.True(t, v.Resolve(tkB, readyResult(3, 3), nil))
	assert.Len(t, v.Snapshot().Items, 3)
}

func TestViewHidesItemsWhileLoading(t *testing.T) {
	v := NewView()
	tk, _ := v.Start()
	v.Resolve(tk, readyResult(10, 30), nil)
	require.Len(t, v.Snapshot().Items, 10)

	v.Dispatch(SetPage{Page: 2})
	s := v.Snapshot()
	assert.Equal(t, StateLoading, s.State)
	assert.Empty(t, s.Items)
	assert.False(t, s.Pager.Visible)
}

func TestViewUnchangedQueryDoesNotRefetch(t *testing.T) {
	v := NewView()
	tk, _ := v.Start()
	v.Resolve(tk, readyResult(3, 3), nil)

	_, ok := v.Dispatch(SetSort{Key: SortNone})
	assert.False(t, ok)
	assert.Equal(t, StateReady, v.State())
}

func TestViewErrorSnapshot(t *testing.T) {
	f := NewResultFetcher(&stubSource{err: errors.New("timeout")}, 10)
	v := NewView()
	s := v.Load(context.Background(), f)

	assert.Equal(t, StateError, s.State)
	assert.Empty(t, s.Items)
	require.NotNil(t, s.Notice)
	assert.Equal(t, alert.Error, s.Notice.Variant)
	assert.True(t, s.Notice.Dismissible)
	assert.Equal(t, fetchFailedMessage, s.Message)

	_, ok := v.Retry()
	assert.True(t, ok)
	assert.Equal(t, StateLoading, v.State())
}

func TestViewLoadAppliesPendingQuery(t *testing.T) {
	var seen []QueryState
	f := fetchFunc(func(_ context.Context, q QueryState) (Result, error) {
		seen = append(seen, q)
		return readyResult(5, 25), nil
	})
	v := NewView(WithQuery(Apply(DefaultQuery(), SetPage{Page: 2})))
	s := v.Load(context.Background(), f)

	require.Len(t, seen, 1)
	assert.Equal(t, 2, seen[0].Page)
	assert.Equal(t, StateReady, s.State)
	assert.Equal(t, 3, s.Pagination.TotalPages)
	assert.Equal(t, "1 [2] 3", s.Pager.String())
}

func TestViewPagerClampsVanishedPage(t *testing.T) {
	v := NewView(WithQuery(Apply(DefaultQuery(), SetPage{Page: 9})))
	tk, _ := v.Start()
	v.Resolve(tk, readyResult(5, 25), nil)

	s := v.Snapshot()
	assert.Equal(t, 3, s.Pager.Current)
	assert.Equal(t, 9, s.Pagination.Page)
}

func TestViewBadgesUseMembershipNames(t *testing.T) {
	v := NewView(
		WithQuery(Apply(DefaultQuery(), SetMembership{ID: "1"})),
		WithMemberships([]ds.Membership{{ID: "1", Name: "Gold"}}),
	)
	badges := v.Snapshot().Badges
	require.Len(t, badges, 1)
	assert.Equal(t, "Membership: Gold", badges[0].Label)
}
