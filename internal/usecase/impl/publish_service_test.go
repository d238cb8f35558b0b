package impl

import (
	"context"
	"encoding/json"
	"testing"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/domain/service"
	mockRepo "multipost/internal/mocks/repository"
	mockSvc "multipost/internal/mocks/service"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publishServiceFixtures holds all test dependencies for publish service tests.
type publishServiceFixtures struct {
	service     usecase.PublishUsecase
	registry    *mockSvc.MockProviderRegistry
	adapter     *mockSvc.MockProviderAdapter
	accountRepo *mockRepo.MockAccountRepository
	tokenRepo   *mockRepo.MockTokenRepository
}

func createTestPublishService(t *testing.T) publishServiceFixtures {
	registry := mockSvc.NewMockProviderRegistry(t)
	adapter := mockSvc.NewMockProviderAdapter(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	service := NewPublishService(PublishServiceParams{
		Registry:    registry,
		AccountRepo: accountRepo,
		TokenRepo:   tokenRepo,
		Logger:      newDiscardLogger(),
	})

	return publishServiceFixtures{
		service:     service,
		registry:    registry,
		adapter:     adapter,
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
	}
}

func TestPublishService_PrefersCanonicalToken(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	input := &usecase.PublishInput{
		Platform:          entity.PlatformTikTok,
		LegacyAccountID:   uuid.NewString(),
		WorkspaceID:       workspaceID.String(),
		ExternalAccountID: "open-1",
		Request:           service.PublishRequest{Title: "t", VideoURL: "https://cdn.example/v.mp4"},
	}
	ack := json.RawMessage(`{"data":{"publish_id":"p1"}}`)

	fx.registry.EXPECT().Adapter(entity.PlatformTikTok).Return(fx.adapter, true)
	fx.tokenRepo.EXPECT().FindToken(ctx, workspaceID, entity.PlatformTikTok, "open-1").
		Return(&entity.Token{AccessToken: "fresh"}, nil)
	fx.adapter.EXPECT().Publish(ctx, "fresh", &input.Request).Return(ack, nil)

	result, err := fx.service.Publish(ctx, input)

	require.NoError(t, err)
	assert.JSONEq(t, string(ack), string(result))
}

func TestPublishService_FallsBackToLegacyAccount(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	accountID := uuid.New()
	input := &usecase.PublishInput{
		Platform:          entity.PlatformTikTok,
		LegacyAccountID:   accountID.String(),
		WorkspaceID:       workspaceID.String(),
		ExternalAccountID: "open-1",
	}

	fx.registry.EXPECT().Adapter(entity.PlatformTikTok).Return(fx.adapter, true)
	fx.tokenRepo.EXPECT().FindToken(ctx, workspaceID, entity.PlatformTikTok, "open-1").
		Return(nil, repository.ErrTokenNotFound)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, Platform: entity.PlatformTikTok, AccessToken: "legacy"}, nil)
	fx.adapter.EXPECT().Publish(ctx, "legacy", &input.Request).Return(json.RawMessage(`{}`), nil)

	_, err := fx.service.Publish(ctx, input)

	require.NoError(t, err)
}

func TestPublishService_LegacyOnlyWhenCanonicalRefIncomplete(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.PublishInput{
		Platform:        entity.PlatformYouTube,
		LegacyAccountID: accountID.String(),
		WorkspaceID:     uuid.NewString(),
	}

	fx.registry.EXPECT().Adapter(entity.PlatformYouTube).Return(fx.adapter, true)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, Platform: entity.PlatformYouTube, AccessToken: "legacy"}, nil)
	fx.adapter.EXPECT().Publish(ctx, "legacy", &input.Request).Return(json.RawMessage(`{"id":"v"}`), nil)

	_, err := fx.service.Publish(ctx, input)

	require.NoError(t, err)
}

func TestPublishService_LegacyAccountOfOtherPlatform(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.PublishInput{Platform: entity.PlatformTikTok, LegacyAccountID: accountID.String()}

	fx.registry.EXPECT().Adapter(entity.PlatformTikTok).Return(fx.adapter, true)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).
		Return(&entity.Account{ID: accountID, Platform: entity.PlatformYouTube, AccessToken: "yt"}, nil)

	_, err := fx.service.Publish(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialNotFound))
}

func TestPublishService_NothingResolves(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	accountID := uuid.New()
	input := &usecase.PublishInput{
		Platform:          entity.PlatformTikTok,
		LegacyAccountID:   accountID.String(),
		WorkspaceID:       workspaceID.String(),
		ExternalAccountID: "ghost",
	}

	fx.registry.EXPECT().Adapter(entity.PlatformTikTok).Return(fx.adapter, true)
	fx.tokenRepo.EXPECT().FindToken(ctx, workspaceID, entity.PlatformTikTok, "ghost").Return(nil, repository.ErrTokenNotFound)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Publish(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrCredentialNotFound))
}

func TestPublishService_UnknownPlatform(t *testing.T) {
	fx := createTestPublishService(t)

	fx.registry.EXPECT().Adapter(entity.Platform("vine")).Return(nil, false)

	_, err := fx.service.Publish(context.Background(), &usecase.PublishInput{Platform: entity.Platform("vine")})

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedPlatform))
}

func TestPublishService_AdapterErrorPropagates(t *testing.T) {
	fx := createTestPublishService(t)
	ctx := context.Background()
	accountID := uuid.New()
	input := &usecase.PublishInput{Platform: entity.PlatformFacebook, LegacyAccountID: accountID.String()}

	fx.registry.EXPECT().Adapter(entity.PlatformFacebook).Return(fx.adapter, true)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).
		Return(&entity.Account{Platform: entity.PlatformFacebook, AccessToken: "fb"}, nil)
	fx.adapter.EXPECT().Publish(ctx, "fb", &input.Request).Return(nil, domainerrors.ErrNotImplemented)

	_, err := fx.service.Publish(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrNotImplemented))
}
