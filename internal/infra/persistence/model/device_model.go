package model

import "time"

// DeviceRegistrationModel is the GORM-specific struct for the 'device_registrations' table.
// The device id is the primary key, so a device can be registered to one account at a time.
type DeviceRegistrationModel struct {
	DeviceID   string               `gorm:"type:varchar(255);primaryKey"`
	AccountID  string               `gorm:"type:varchar(255);not null;index"`
	LastSeenAt time.Time            `gorm:"not null"`
	Metadata   *DeviceMetadataModel `gorm:"type:jsonb;not null;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceRegistrationModel) TableName() string {
	return "device_registrations"
}

// DeviceMetadataModel is stored as a JSON object. Empty fields are omitted so that
// a jsonb merge on upsert never overwrites stored values with blanks.
type DeviceMetadataModel struct {
	DeviceType     string `json:"deviceType,omitempty"`
	OSName         string `json:"osName,omitempty"`
	OSVersion      string `json:"osVersion,omitempty"`
	BrowserName    string `json:"browserName,omitempty"`
	BrowserVersion string `json:"browserVersion,omitempty"`
	Locale         string `json:"locale,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Country        string `json:"country,omitempty"`
	Region         string `json:"region,omitempty"`
	City           string `json:"city,omitempty"`
}
