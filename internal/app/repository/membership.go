package repository

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/metrics"
	"algofit-storefront/internal/app/redis"
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var membershipsKey = redis.CacheKey("memberships")

const membershipFillTimeout = 10 * time.Second

// MembershipRepository serves the membership list from the store, filling it
// from the backend at most once per TTL.
type MembershipRepository struct {
	backend Backend
	store   Store
	ttl     time.Duration
	group   singleflight.Group
}

func NewMembershipRepository(b Backend, store Store, ttl time.Duration) *MembershipRepository {
	return &MembershipRepository{
		backend: b,
		store:   store,
		ttl:     ttl,
	}
}

func (r *MembershipRepository) List(ctx context.Context) ([]ds.Membership, error) {
	if raw, err := r.store.Get(ctx, membershipsKey); err == nil {
		var memberships []ds.Membership
		if err := json.Unmarshal([]byte(raw), &memberships); err == nil {
			metrics.CacheRequestsTotal.WithLabelValues("memberships", "hit").Inc()
			return memberships, nil
		}
		logrus.Warnf("dropping undecodable membership cache entry")
	} else if err != redis.ErrNil {
		logrus.Warnf("membership cache read failed: %v", err)
	}
	metrics.CacheRequestsTotal.WithLabelValues("memberships", "miss").Inc()

	// The fill outlives the caller that started it; other callers may be waiting on it.
	ch := r.group.DoChan(membershipsKey, func() (interface{}, error) {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), membershipFillTimeout)
		defer cancel()

		memberships, err := r.backend.ListMemberships(fillCtx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(memberships); err == nil {
			if err := r.store.Set(fillCtx, membershipsKey, string(raw), r.ttl); err != nil {
				logrus.Warnf("membership cache write failed: %v", err)
			}
		}
		return memberships, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]ds.Membership), nil
	}
}

// Name resolves a membership id for badges, falling back to the id itself.
func (r *MembershipRepository) Name(ctx context.Context, id string) string {
	memberships, err := r.List(ctx)
	if err != nil {
		return id
	}
	return catalog.MembershipName(memberships, id)
}

// Invalidate drops the cached list.
func (r *MembershipRepository) Invalidate(ctx context.Context) error {
	return r.store.Delete(ctx, membershipsKey)
}
