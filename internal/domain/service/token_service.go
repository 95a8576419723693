package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims accepted on access tokens. The subject is the
// caller's user ID as issued by the platform's identity service.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued elsewhere on the platform.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
