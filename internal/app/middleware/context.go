package middleware

import (
	"algofit-storefront/internal/app/ds"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxEmail     = "email"
	ctxIsStaff   = "is_staff"
	ctxSessionID = "session_id"
	ctxToken     = "access_token"
	ctxClaims    = "claims"
)

func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxEmail)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

func IsStaff(c *gin.Context) bool {
	return c.GetBool(ctxIsStaff)
}

func GetSessionID(c *gin.Context) (string, bool) {
	sid := c.GetString(ctxSessionID)
	return sid, sid != ""
}

// GetToken returns the raw access token of the authenticated request.
func GetToken(c *gin.Context) (string, bool) {
	token := c.GetString(ctxToken)
	return token, token != ""
}

func GetClaims(c *gin.Context) (*ds.JWTClaims, bool) {
	v, exists := c.Get(ctxClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*ds.JWTClaims)
	return claims, ok
}
