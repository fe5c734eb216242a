package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareRole is the access level a share grant confers on a profile.
type ShareRole string

const (
	ShareRoleViewer ShareRole = "viewer"
	ShareRoleEditor ShareRole = "editor"
)

// ShareStatus tracks whether the invitee has accepted the grant.
type ShareStatus string

const (
	ShareStatusPending  ShareStatus = "pending"
	ShareStatusAccepted ShareStatus = "accepted"
)

// ShareGrant gives an invitee, identified by email, access to another account's profile.
type ShareGrant struct {
	ID               uuid.UUID   `json:"id"`
	ProfileID        string      `json:"profile_id"`
	OwnerAccountID   string      `json:"owner_account_id"`
	OwnerEmail       string      `json:"owner_email"`
	InviteeEmail     string      `json:"invitee_email"` // Stored lower-cased.
	InviteeAccountID *string     `json:"invitee_account_id,omitempty"`
	Role             ShareRole   `json:"role"`
	Status           ShareStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
