package entity

import "time"

// DeviceRegistration records that a device has been admitted for an account.
// There is at most one registration per device id.
type DeviceRegistration struct {
	DeviceID   string          `json:"device_id"`    // Client-generated device identifier.
	AccountID  string          `json:"account_id"`   // The account the device is registered to.
	LastSeenAt time.Time       `json:"last_seen_at"` // Last time the device passed the gate. Never moves backwards.
	Metadata   *DeviceMetadata `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DeviceMetadata is optional descriptive information about a device.
// Every field is optional; empty fields never overwrite stored values.
type DeviceMetadata struct {
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

// IsEmpty reports whether no field is set.
func (m *DeviceMetadata) IsEmpty() bool {
	return m == nil || *m == DeviceMetadata{}
}

// Merge returns a copy of m with every non-empty field of update applied on top.
func (m *DeviceMetadata) Merge(update *DeviceMetadata) *DeviceMetadata {
	merged := DeviceMetadata{}
	if m != nil {
		merged = *m
	}
	if update == nil {
		return &merged
	}

	setIfPresent(&merged.DeviceType, update.DeviceType)
	setIfPresent(&merged.OSName, update.OSName)
	setIfPresent(&merged.OSVersion, update.OSVersion)
	setIfPresent(&merged.BrowserName, update.BrowserName)
	setIfPresent(&merged.BrowserVersion, update.BrowserVersion)
	setIfPresent(&merged.Locale, update.Locale)
	setIfPresent(&merged.Timezone, update.Timezone)
	setIfPresent(&merged.Country, update.Country)
	setIfPresent(&merged.Region, update.Region)
	setIfPresent(&merged.City, update.City)

	return &merged
}

// FillMissing returns a copy of m where empty fields are taken from fallback.
func (m *DeviceMetadata) FillMissing(fallback *DeviceMetadata) *DeviceMetadata {
	if fallback == nil {
		if m == nil {
			return nil
		}
		filled := *m

		return &filled
	}

	return fallback.Merge(m)
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
