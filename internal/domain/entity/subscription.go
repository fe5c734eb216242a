package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state captured by a subscription snapshot.
type SubscriptionStatus string

const (
	SubscriptionStatusActive          SubscriptionStatus = "active"
	SubscriptionStatusInactive        SubscriptionStatus = "inactive"
	SubscriptionStatusTrialing        SubscriptionStatus = "trialing"
	SubscriptionStatusCanceledPending SubscriptionStatus = "canceled_pending"
)

// IsValid checks if the status is a known value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusInactive,
		SubscriptionStatusTrialing, SubscriptionStatusCanceledPending:
		return true
	default:
		return false
	}
}

// SubscriptionStatusesFromStrings converts configured status names, dropping unknown ones.
func SubscriptionStatusesFromStrings(ss []string) []SubscriptionStatus {
	result := make([]SubscriptionStatus, 0, len(ss))
	for _, s := range ss {
		status := SubscriptionStatus(s)
		if status.IsValid() {
			result = append(result, status)
		}
	}

	return result
}

// SubscriptionSnapshot is a point-in-time record of an account's billing state.
// Snapshots are superseded by flipping them to inactive, never deleted.
type SubscriptionSnapshot struct {
	ID        uuid.UUID          `json:"id"`
	AccountID string             `json:"account_id"`
	Status    SubscriptionStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
