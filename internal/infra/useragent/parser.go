// Package useragent derives device metadata from User-Agent strings.
package useragent

import (
	"strings"

	"famhealth/internal/domain/entity"
	"famhealth/internal/domain/service"

	uaparser "github.com/mileusna/useragent"
)

// Device types reported in metadata
const (
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeBot     = "bot"
)

type parser struct{}

// NewParser returns a DeviceMetadataParser backed by mileusna/useragent.
func NewParser() service.DeviceMetadataParser {
	return parser{}
}

// Parse returns nil when the string carries nothing recognisable.
func (parser) Parse(userAgent string) *entity.DeviceMetadata {
	if strings.TrimSpace(userAgent) == "" {
		return nil
	}

	ua := uaparser.Parse(userAgent)

	metadata := &entity.DeviceMetadata{
		DeviceType:     deviceType(ua),
		OSName:         ua.OS,
		OSVersion:      ua.OSVersion,
		BrowserName:    ua.Name,
		BrowserVersion: ua.Version,
	}

	if metadata.IsEmpty() {
		return nil
	}

	return metadata
}

func deviceType(ua uaparser.UserAgent) string {
	switch {
	case ua.Bot:
		return DeviceTypeBot
	case ua.Tablet:
		return DeviceTypeTablet
	case ua.Mobile:
		return DeviceTypeMobile
	case ua.Desktop:
		return DeviceTypeDesktop
	default:
		return ""
	}
}
