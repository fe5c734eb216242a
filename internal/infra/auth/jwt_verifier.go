// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"famhealth/config"
	"famhealth/internal/domain/entity"
	"famhealth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrMissingSubject is returned for otherwise valid tokens that name no account.
var ErrMissingSubject = errors.New("token has no subject")

// jwtVerifier is a concrete implementation of the ClaimsVerifier interface for HS256 tokens.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.ClaimsVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify checks the token and returns the identity it carries.
func (v *jwtVerifier) Verify(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}

	token, err := v.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return nil, ErrMissingSubject
	}

	return &entity.Identity{
		AccountID: subject,
		Email:     claims.Email,
	}, nil
}
