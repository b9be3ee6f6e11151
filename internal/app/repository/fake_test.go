package repository

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/ds"
	"context"
	"net/url"
	"sync"
	"sync/atomic"
)

// fakeBackend answers from canned data and counts calls.
type fakeBackend struct {
	mu sync.Mutex

	plans       []ds.Plan
	count       int64
	memberships []ds.Membership
	reviews     []ds.Review
	user        ds.User

	plansErr       error
	planErr        error
	membershipsErr error
	reviewsErr     error
	tokenErr       error

	membershipCalls int32
	fillCtxErr      error
	lastParams      url.Values
	block           chan struct{}
}

var _ Backend = (*fakeBackend)(nil)

func (f *fakeBackend) ListPlans(_ context.Context, params url.Values) (ds.PlanPage, error) {
	f.mu.Lock()
	f.lastParams = params
	f.mu.Unlock()
	if f.plansErr != nil {
		return ds.PlanPage{}, f.plansErr
	}
	return ds.PlanPage{Count: f.count, Results: f.plans}, nil
}

func (f *fakeBackend) GetPlan(_ context.Context, id uint) (ds.Plan, error) {
	if f.planErr != nil {
		return ds.Plan{}, f.planErr
	}
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return ds.Plan{}, &backend.APIError{Status: 404, Detail: "Not found."}
}

func (f *fakeBackend) ListMemberships(ctx context.Context) ([]ds.Membership, error) {
	atomic.AddInt32(&f.membershipCalls, 1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.fillCtxErr = ctx.Err()
	f.mu.Unlock()
	return f.memberships, f.membershipsErr
}

func (f *fakeBackend) ListReviews(context.Context) ([]ds.Review, error) {
	return f.reviews, f.reviewsErr
}

func (f *fakeBackend) RegisterUser(_ context.Context, p backend.RegisterPayload) (ds.User, error) {
	return ds.User{ID: 99, Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}, nil
}

func (f *fakeBackend) ActivateUser(context.Context, string, string) error { return nil }

func (f *fakeBackend) ResendActivation(context.Context, string) error { return nil }

func (f *fakeBackend) CreateToken(_ context.Context, email, password string) (ds.BackendTokens, error) {
	if f.tokenErr != nil {
		return ds.BackendTokens{}, f.tokenErr
	}
	return ds.BackendTokens{Access: "backend-access", Refresh: "backend-refresh"}, nil
}

func (f *fakeBackend) RefreshToken(_ context.Context, refresh string) (ds.BackendTokens, error) {
	return ds.BackendTokens{Access: "backend-access-2", Refresh: refresh}, nil
}

func (f *fakeBackend) Me(context.Context, string) (ds.User, error) { return f.user, nil }

func (f *fakeBackend) UpdateMe(_ context.Context, _ string, p backend.ProfilePayload) (ds.User, error) {
	u := f.user
	u.FirstName = p.FirstName
	return u, nil
}

func (f *fakeBackend) SetPassword(context.Context, string, string, string) error { return nil }
