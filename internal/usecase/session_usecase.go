package usecase

import (
	"context"

	"famhealth/internal/domain/entity"
)

// PreAuthInput is the identity provider's pre-authentication trigger.
type PreAuthInput struct {
	AccountID    string
	Email        string
	DeviceID     string
	KickPrevious bool
	Metadata     *entity.DeviceMetadata
	UserAgent    string
}

// PreAuthOutput tells the identity provider to continue the sign-in.
type PreAuthOutput struct {
	Allowed    bool     `json:"allowed"`
	Subscribed bool     `json:"subscribed"`
	Evicted    []string `json:"evicted"`
}

// SessionUsecase handles the sign-in handshake with the identity provider.
type SessionUsecase interface {
	// PreAuthenticate registers the device or aborts the sign-in with a guard failure.
	PreAuthenticate(ctx context.Context, input *PreAuthInput) (*PreAuthOutput, error)
}
