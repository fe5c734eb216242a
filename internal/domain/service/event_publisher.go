package service

import (
	"context"
	"time"
)

// Device event types
const (
	DeviceEventEvicted     = "device.evicted"
	DeviceEventRevoked     = "device.revoked"
	DeviceEventTransferred = "device.transferred"
)

// DeviceEvent notifies downstream consumers that a device lost its registration.
type DeviceEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	AccountID     string    `json:"account_id"`
	DeviceID      string    `json:"device_id"`
	CauseDeviceID string    `json:"cause_device_id,omitempty"` // The device whose sign-in caused the removal
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeviceEvent publishes a device lifecycle event
	PublishDeviceEvent(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
