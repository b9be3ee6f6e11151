package redis

import (
	"fmt"
	"strings"
)

const (
	blacklistPrefix    = "jwt:blacklist:"
	sessionPrefix      = "session:"
	refreshTokenPrefix = "refresh:token:"
	cartPrefix         = "cart:"
	cachePrefix        = "cache:"
)

// BlacklistKey marks a logged-out access token.
func BlacklistKey(token string) string {
	return blacklistPrefix + token
}

// SessionKey holds the backend tokens and profile of a session.
func SessionKey(sessionID string) string {
	return sessionPrefix + sessionID
}

// RefreshTokenKey holds the refresh token currently valid for a session.
func RefreshTokenKey(sessionID string) string {
	return refreshTokenPrefix + sessionID
}

// CartKey is the hash of plan id to quantity for a user.
func CartKey(userID uint) string {
	return fmt.Sprintf("%s%d", cartPrefix, userID)
}

// CacheKey namespaces cached backend responses, e.g. CacheKey("memberships").
func CacheKey(parts ...string) string {
	return cachePrefix + strings.Join(parts, ":")
}
