package model

// ProfileModel is the GORM-specific struct for the ownership columns of the 'profiles' table.
type ProfileModel struct {
	ID             string `gorm:"type:varchar(255);primaryKey"`
	OwnerAccountID string `gorm:"type:varchar(255);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
