// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"famhealth/internal/domain/entity"
)

// Claims defines the identity provider claims the service relies on.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ClaimsVerifier validates a bearer token and yields the caller's identity.
// This abstracts the token format from the delivery layer.
type ClaimsVerifier interface {
	// Verify checks the token signature and expiry and returns the identity it carries.
	Verify(tokenString string) (*entity.Identity, error)
}
