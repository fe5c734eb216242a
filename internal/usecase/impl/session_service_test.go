package impl

import (
	"context"
	"testing"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	mockService "famhealth/internal/mocks/service"
	mockUsecase "famhealth/internal/mocks/usecase"
	"famhealth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service       usecase.SessionUsecase
	subscriptions *mockUsecase.MockSubscriptionUsecase
	enforcer      *mockUsecase.MockDeviceEnforcer
	parser        *mockService.MockDeviceMetadataParser
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	subscriptions := mockUsecase.NewMockSubscriptionUsecase(t)
	enforcer := mockUsecase.NewMockDeviceEnforcer(t)
	parser := mockService.NewMockDeviceMetadataParser(t)

	return sessionServiceFixtures{
		service: NewSessionService(SessionServiceParams{
			Subscriptions: subscriptions,
			Enforcer:      enforcer,
			Parser:        parser,
			Config:        newTestConfig(1),
			Logger:        newDiscardLogger(),
		}),
		subscriptions: subscriptions,
		enforcer:      enforcer,
		parser:        parser,
	}
}

var defaultHookStatuses = []entity.SubscriptionStatus{entity.SubscriptionStatusActive, entity.SubscriptionStatusTrialing}

func TestSessionService_PreAuthenticate_MissingInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.PreAuthInput
		wantErr error
	}{
		{name: "no account", input: &usecase.PreAuthInput{DeviceID: "D1"}, wantErr: domainerrors.ErrUnauthorized},
		{name: "no device", input: &usecase.PreAuthInput{AccountID: "U1"}, wantErr: domainerrors.ErrDeviceRequired},
		{name: "blank device", input: &usecase.PreAuthInput{AccountID: "U1", DeviceID: " "}, wantErr: domainerrors.ErrDeviceRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)

			output, err := fx.service.PreAuthenticate(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionService_PreAuthenticate_RegistersWithKick(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.parser.EXPECT().
		Parse("Mozilla/5.0 (iPhone)").
		Return(&entity.DeviceMetadata{DeviceType: "mobile", OSName: "iOS", BrowserName: "Safari"})
	fx.subscriptions.EXPECT().
		RefreshStatus(ctx, "U1", defaultHookStatuses).
		Return(false, nil)
	fx.enforcer.EXPECT().
		Register(ctx, mock.MatchedBy(func(input *usecase.EnforceDeviceInput) bool {
			return input.AccountID == "U1" &&
				input.DeviceID == "D2" &&
				input.AllowEviction &&
				input.Limit == 1 &&
				input.Registrations == nil &&
				input.Metadata.OSName == "iPadOS" &&
				input.Metadata.BrowserName == "Safari" &&
				input.Metadata.Locale == "en-GB"
		})).
		Return(&usecase.DeviceDecision{Registered: true, Allowed: true, LimitApplied: true, Evicted: []string{"D1"}}, nil)

	output, err := fx.service.PreAuthenticate(ctx, &usecase.PreAuthInput{
		AccountID:    "U1",
		DeviceID:     "D2",
		KickPrevious: true,
		Metadata:     &entity.DeviceMetadata{OSName: "iPadOS", Locale: "en-GB"},
		UserAgent:    "Mozilla/5.0 (iPhone)",
	})

	require.NoError(t, err)
	assert.True(t, output.Allowed)
	assert.False(t, output.Subscribed)
	assert.Equal(t, []string{"D1"}, output.Evicted)
}

func TestSessionService_PreAuthenticate_LimitExceeded(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.subscriptions.EXPECT().RefreshStatus(ctx, "U1", defaultHookStatuses).Return(false, nil)
	fx.enforcer.EXPECT().
		Register(ctx, mock.AnythingOfType("*usecase.EnforceDeviceInput")).
		Return(nil, domainerrors.ErrDeviceLimitExceeded)

	output, err := fx.service.PreAuthenticate(ctx, &usecase.PreAuthInput{AccountID: "U1", DeviceID: "D2"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceLimitExceeded)
}

func TestSessionService_PreAuthenticate_SubscribedPassesFlag(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.subscriptions.EXPECT().RefreshStatus(ctx, "U1", defaultHookStatuses).Return(true, nil)
	fx.enforcer.EXPECT().
		Register(ctx, mock.MatchedBy(func(input *usecase.EnforceDeviceInput) bool {
			return input.Subscribed && !input.AllowEviction && input.Metadata == nil
		})).
		Return(&usecase.DeviceDecision{Registered: true, Allowed: true}, nil)

	output, err := fx.service.PreAuthenticate(ctx, &usecase.PreAuthInput{AccountID: "U1", DeviceID: "D3"})

	require.NoError(t, err)
	assert.True(t, output.Subscribed)
	assert.NotNil(t, output.Evicted)
	assert.Empty(t, output.Evicted)
}
