package repository

import (
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/redis"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps the backend tokens of each storefront session and
// the tokens revoked by logout.
type SessionRepository struct {
	backend    Backend
	store      Store
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewSessionRepository(b Backend, store Store, accessTTL, refreshTTL time.Duration) *SessionRepository {
	return &SessionRepository{
		backend:    b,
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Login exchanges credentials with the backend and opens a session for the user.
func (r *SessionRepository) Login(ctx context.Context, email, password, clientIP string) (ds.Session, error) {
	tokens, err := r.backend.CreateToken(ctx, email, password)
	if err != nil {
		return ds.Session{}, err
	}
	user, err := r.backend.Me(ctx, tokens.Access)
	if err != nil {
		return ds.Session{}, err
	}

	session := ds.Session{
		ID:        uuid.NewString(),
		User:      user,
		Backend:   tokens,
		CreatedAt: r.now(),
		ClientIP:  clientIP,
	}
	if err := r.Save(ctx, session); err != nil {
		return ds.Session{}, err
	}
	return session, nil
}

// Save stores session for as long as its refresh token can renew it.
func (r *SessionRepository) Save(ctx context.Context, session ds.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %v", err)
	}
	if err := r.store.Set(ctx, redis.SessionKey(session.ID), string(raw), r.refreshTTL); err != nil {
		return fmt.Errorf("failed to save session: %v", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (ds.Session, error) {
	raw, err := r.store.Get(ctx, redis.SessionKey(sessionID))
	if err == redis.ErrNil {
		return ds.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return ds.Session{}, fmt.Errorf("failed to load session: %v", err)
	}
	var session ds.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return ds.Session{}, fmt.Errorf("failed to decode session: %v", err)
	}
	return session, nil
}

// RenewBackend refreshes the backend access token of a session.
func (r *SessionRepository) RenewBackend(ctx context.Context, session ds.Session) (ds.Session, error) {
	tokens, err := r.backend.RefreshToken(ctx, session.Backend.Refresh)
	if err != nil {
		return ds.Session{}, err
	}
	session.Backend = tokens
	if err := r.Save(ctx, session); err != nil {
		return ds.Session{}, err
	}
	return session, nil
}

// Delete ends a session and forgets its refresh token.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, redis.SessionKey(sessionID), redis.RefreshTokenKey(sessionID))
}

func (r *SessionRepository) SaveRefreshToken(ctx context.Context, sessionID, token string) error {
	return r.store.Set(ctx, redis.RefreshTokenKey(sessionID), token, r.refreshTTL)
}

// RefreshTokenMatches reports whether token is the refresh token issued last for the session.
func (r *SessionRepository) RefreshTokenMatches(ctx context.Context, sessionID, token string) (bool, error) {
	stored, err := r.store.Get(ctx, redis.RefreshTokenKey(sessionID))
	if err == redis.ErrNil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

// Blacklist revokes an access token until it would have expired anyway.
func (r *SessionRepository) Blacklist(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if expiresAt.IsZero() || ttl > r.accessTTL {
		ttl = r.accessTTL
	}
	if ttl <= 0 {
		return nil
	}
	return r.store.Set(ctx, redis.BlacklistKey(token), "blacklisted", ttl)
}

func (r *SessionRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	exists, err := r.store.Exists(ctx, redis.BlacklistKey(token))
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return exists, nil
}
