package utils

import (
	"algofit-storefront/internal/app/ds"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const tokenIssuer = "algofit-storefront"

var ErrWrongTokenKind = errors.New("wrong token kind")

func newClaims(user ds.User, sessionID string, expiresIn time.Duration, refresh bool) ds.JWTClaims {
	now := time.Now()
	return ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(expiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
			Subject:   user.Email,
			Id:        uuid.NewString(),
		},
		UserID:    user.ID,
		Email:     user.Email,
		IsStaff:   user.IsStaff,
		SessionID: sessionID,
		Refresh:   refresh,
	}
}

func sign(claims ds.JWTClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateAccessToken(user ds.User, sessionID, secret string, expiresIn time.Duration) (string, error) {
	return sign(newClaims(user, sessionID, expiresIn, false), secret)
}

func GenerateRefreshToken(user ds.User, sessionID, secret string, expiresIn time.Duration) (string, error) {
	return sign(newClaims(user, sessionID, expiresIn, true), secret)
}

// ValidateToken checks the signature and expiry of an HS256 token.
func ValidateToken(tokenString string, secret string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ds.JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}

// ValidateAccessToken rejects refresh tokens presented as access tokens.
func ValidateAccessToken(tokenString, secret string) (*ds.JWTClaims, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.Refresh {
		return nil, ErrWrongTokenKind
	}
	return claims, nil
}

// ValidateRefreshToken accepts only refresh tokens.
func ValidateRefreshToken(tokenString, secret string) (*ds.JWTClaims, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if !claims.Refresh {
		return nil, ErrWrongTokenKind
	}
	return claims, nil
}

// ExpiresAt converts the exp claim to a time.
func ExpiresAt(claims *ds.JWTClaims) time.Time {
	if claims == nil || claims.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(claims.ExpiresAt, 0)
}
