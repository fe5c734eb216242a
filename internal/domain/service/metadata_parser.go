package service

import "famhealth/internal/domain/entity"

// DeviceMetadataParser derives device metadata from a User-Agent string.
type DeviceMetadataParser interface {
	// Parse returns whatever browser, OS and device type information the string carries.
	Parse(userAgent string) *entity.DeviceMetadata
}
