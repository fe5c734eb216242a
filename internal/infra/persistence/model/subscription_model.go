package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionSnapshotModel is the GORM-specific struct for the 'subscription_snapshots' table.
// Rows are written by the billing integration; this service only reads them.
type SubscriptionSnapshotModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID string    `gorm:"type:varchar(255);not null;index:idx_subscription_account_status"`
	Status    string    `gorm:"type:varchar(32);not null;index:idx_subscription_account_status"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionSnapshotModel) TableName() string {
	return "subscription_snapshots"
}
