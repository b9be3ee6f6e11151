package middleware

import (
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/utils"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	jwtPrefix = "Bearer "
)

// Blacklist reports whether an access token was revoked by logout.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization header required"
	}
	if !strings.HasPrefix(authHeader, jwtPrefix) {
		return "", "Bearer token required"
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, jwtPrefix))
	if tokenString == "" {
		return "", "Token is empty"
	}
	return tokenString, ""
}

// AuthMiddleware validates the storefront access token and puts its claims in the context.
func AuthMiddleware(blacklist Blacklist, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		inBlacklist, err := blacklist.IsBlacklisted(c.Request.Context(), tokenString)
		if err != nil {
			logrus.Error("Failed to check token in blacklist: ", err)
		} else if inBlacklist {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is invalidated"})
			return
		}

		claims, err := utils.ValidateAccessToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setClaims(c, tokenString, claims)

		logrus.Debugf("User authenticated: %s (ID: %d, staff: %t)", claims.Email, claims.UserID, claims.IsStaff)

		c.Next()
	}
}

// OptionalAuth fills the context when a valid token is present but never rejects the request.
func OptionalAuth(blacklist Blacklist, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			c.Next()
			return
		}

		if inBlacklist, err := blacklist.IsBlacklisted(c.Request.Context(), tokenString); err == nil && inBlacklist {
			c.Next()
			return
		}

		if claims, err := utils.ValidateAccessToken(tokenString, secret); err == nil {
			setClaims(c, tokenString, claims)
		}

		c.Next()
	}
}

// StaffOnly must run after AuthMiddleware.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, token string, claims *ds.JWTClaims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxIsStaff, claims.IsStaff)
	c.Set(ctxSessionID, claims.SessionID)
	c.Set(ctxToken, token)
	c.Set(ctxClaims, claims)
}
