// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// Identity is the verified caller of a request, taken from the identity provider's claims.
// It is attached to the request once at the authentication boundary and never re-verified.
type Identity struct {
	AccountID string `json:"account_id"` // The identity provider's stable account id (the token subject).
	Email     string `json:"email"`      // The account's email, used to match share grants.
}

// Valid reports whether the identity carries an account id.
func (i *Identity) Valid() bool {
	return i != nil && strings.TrimSpace(i.AccountID) != ""
}

// NormalizedEmail returns the email in the form share grants are compared against.
func (i *Identity) NormalizedEmail() string {
	if i == nil {
		return ""
	}

	return NormalizeEmail(i.Email)
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
