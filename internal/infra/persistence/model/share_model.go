package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileShareModel is the GORM-specific struct for the 'profile_shares' table.
type ProfileShareModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID        string    `gorm:"type:varchar(255);not null;index:idx_share_profile_invitee"`
	OwnerAccountID   string    `gorm:"type:varchar(255);not null"`
	OwnerEmail       string    `gorm:"type:varchar(320);not null"`
	InviteeEmail     string    `gorm:"type:varchar(320);not null;index:idx_share_profile_invitee"`
	InviteeAccountID *string   `gorm:"type:varchar(255)"`
	Role             string    `gorm:"type:varchar(16);not null"`
	Status           string    `gorm:"type:varchar(16);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileShareModel) TableName() string {
	return "profile_shares"
}
