package repository

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/redis"
	"context"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Backend is the part of the remote backend the storefront relies on.
type Backend interface {
	ListPlans(ctx context.Context, params url.Values) (ds.PlanPage, error)
	GetPlan(ctx context.Context, id uint) (ds.Plan, error)
	ListMemberships(ctx context.Context) ([]ds.Membership, error)
	ListReviews(ctx context.Context) ([]ds.Review, error)
	RegisterUser(ctx context.Context, payload backend.RegisterPayload) (ds.User, error)
	ActivateUser(ctx context.Context, uid, token string) error
	ResendActivation(ctx context.Context, email string) error
	CreateToken(ctx context.Context, email, password string) (ds.BackendTokens, error)
	RefreshToken(ctx context.Context, refresh string) (ds.BackendTokens, error)
	Me(ctx context.Context, access string) (ds.User, error)
	UpdateMe(ctx context.Context, access string, payload backend.ProfilePayload) (ds.User, error)
	SetPassword(ctx context.Context, access, current, next string) error
}

var _ Backend = (*backend.Client)(nil)

// Options tunes the repositories; zero values fall back to defaults.
type Options struct {
	PageSize      int
	SiblingCount  int
	BoundaryCount int
	MembershipTTL time.Duration
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = catalog.DefaultPageSize
	}
	if o.SiblingCount <= 0 {
		o.SiblingCount = catalog.DefaultSiblingCount
	}
	if o.BoundaryCount <= 0 {
		o.BoundaryCount = catalog.DefaultBoundaryCount
	}
	if o.MembershipTTL <= 0 {
		o.MembershipTTL = 5 * time.Minute
	}
	if o.AccessTTL <= 0 {
		o.AccessTTL = 24 * time.Hour
	}
	if o.RefreshTTL <= 0 {
		o.RefreshTTL = 168 * time.Hour
	}
	return o
}

// OptionsFromConfig maps the service configuration onto repository options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PageSize:      cfg.Catalog.PageSize,
		SiblingCount:  cfg.Catalog.SiblingCount,
		BoundaryCount: cfg.Catalog.BoundaryCount,
		MembershipTTL: cfg.Cache.MembershipTTL,
		AccessTTL:     cfg.JWTAccessExpire,
		RefreshTTL:    cfg.JWTRefreshExpire,
	}
}

type Repository struct {
	backend    Backend
	store      Store
	Membership *MembershipRepository
	Plan       *PlanRepository
	Review     *ReviewRepository
	Cart       *CartRepository
	Session    *SessionRepository
}

// NewRepository wires the backend client and Redis from cfg. Without Redis the
// repositories keep their state in process memory.
func NewRepository(cfg *config.Config) (*Repository, error) {
	var store Store
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize Redis client: %v", err)
		logrus.Warn("Falling back to in-memory store; sessions and carts are lost on restart")
		store = NewMemoryStore()
	} else {
		store = redisClient
	}

	return New(backend.NewClientFromConfig(cfg), store, OptionsFromConfig(cfg)), nil
}

// New assembles a Repository over explicit collaborators.
func New(b Backend, store Store, opts Options) *Repository {
	opts = opts.withDefaults()
	memberships := NewMembershipRepository(b, store, opts.MembershipTTL)
	reviews := NewReviewRepository(b)
	return &Repository{
		backend:    b,
		store:      store,
		Membership: memberships,
		Plan:       NewPlanRepository(b, memberships, reviews, opts),
		Review:     reviews,
		Cart:       NewCartRepository(store),
		Session:    NewSessionRepository(b, store, opts.AccessTTL, opts.RefreshTTL),
	}
}

func (r *Repository) Backend() Backend { return r.backend }

func (r *Repository) Store() Store { return r.store }

func (r *Repository) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			logrus.Errorf("Error closing store: %v", err)
		}
	}
}
