// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"nagarsetu/config"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService verifies access tokens minted by the platform's identity service.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks signature, algorithm and expiry, and requires a subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return claims, nil
}
