package impl

import (
	"context"
	"testing"
	"time"

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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// oauthServiceFixtures holds all test dependencies for oauth service tests.
type oauthServiceFixtures struct {
	service       usecase.OAuthUsecase
	registry      *mockSvc.MockProviderRegistry
	adapter       *mockSvc.MockProviderAdapter
	codec         *mockSvc.MockStateCodec
	publisher     *mockSvc.MockEventPublisher
	workspaceRepo *mockRepo.MockWorkspaceRepository
	accountRepo   *mockRepo.MockAccountRepository
	tokenRepo     *mockRepo.MockTokenRepository
	now           time.Time
}

func createTestOAuthService(t *testing.T, multiTenant bool) oauthServiceFixtures {
	registry := mockSvc.NewMockProviderRegistry(t)
	adapter := mockSvc.NewMockProviderAdapter(t)
	codec := mockSvc.NewMockStateCodec(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	svc := NewOAuthService(OAuthServiceParams{
		Registry:      registry,
		Codec:         codec,
		WorkspaceRepo: workspaceRepo,
		AccountRepo:   accountRepo,
		TokenRepo:     tokenRepo,
		Publisher:     publisher,
		Config:        newTestConfig(multiTenant),
		Logger:        newDiscardLogger(),
	})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.(*oauthService).now = func() time.Time { return now }

	return oauthServiceFixtures{
		service:       svc,
		registry:      registry,
		adapter:       adapter,
		codec:         codec,
		publisher:     publisher,
		workspaceRepo: workspaceRepo,
		accountRepo:   accountRepo,
		tokenRepo:     tokenRepo,
		now:           now,
	}
}

func (fx oauthServiceFixtures) expectAdapter(platform entity.Platform) {
	fx.registry.EXPECT().Adapter(platform).Return(fx.adapter, true)
}

func TestOAuthService_BeginLink_Success(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformYouTube)
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.adapter.EXPECT().BuildAuthorizationURL(workspaceID).Return("https://accounts.example/auth?state=x", nil)

	authURL, err := fx.service.BeginLink(ctx, entity.PlatformYouTube, workspaceID.String(), "")

	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example/auth?state=x", authURL)
}

func TestOAuthService_BeginLink_UnknownPlatform(t *testing.T) {
	fx := createTestOAuthService(t, false)

	fx.registry.EXPECT().Adapter(entity.Platform("myspace")).Return(nil, false)

	_, err := fx.service.BeginLink(context.Background(), entity.Platform("myspace"), uuid.NewString(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedPlatform))
}

func TestOAuthService_BeginLink_MissingFolder(t *testing.T) {
	fx := createTestOAuthService(t, false)

	fx.expectAdapter(entity.PlatformTikTok)

	_, err := fx.service.BeginLink(context.Background(), entity.PlatformTikTok, "  ", "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestOAuthService_BeginLink_WorkspaceAbsent(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformTikTok)
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(nil, repository.ErrWorkspaceNotFound)

	_, err := fx.service.BeginLink(ctx, entity.PlatformTikTok, workspaceID.String(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestOAuthService_BeginLink_MalformedFolderID(t *testing.T) {
	fx := createTestOAuthService(t, false)

	fx.expectAdapter(entity.PlatformTikTok)

	_, err := fx.service.BeginLink(context.Background(), entity.PlatformTikTok, "not-a-folder", "")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestOAuthService_BeginLink_MultiTenantForeignFolder(t *testing.T) {
	fx := createTestOAuthService(t, true)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformYouTube)
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, strPtr("user-2")).Return(nil, repository.ErrWorkspaceNotFound)

	_, err := fx.service.BeginLink(ctx, entity.PlatformYouTube, workspaceID.String(), "user-2")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestOAuthService_CompleteLink_Success(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()
	platform := entity.PlatformTikTok
	workspace := &entity.Workspace{ID: workspaceID, OwnerID: strPtr("user-1")}

	fx.expectAdapter(platform)
	fx.codec.EXPECT().Decode("signed").Return(entity.LinkState{WorkspaceID: workspaceID.String(), Platform: &platform})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(workspace, nil)
	fx.adapter.EXPECT().ExchangeCode(ctx, "code-1").Return(&service.ExchangeResult{
		AccessToken:       "act",
		RefreshToken:      "rft",
		ExpiresIn:         3600,
		ExternalAccountID: "open-1",
		Nickname:          "Sneaker Head",
		Scope:             "video.publish",
	}, nil)

	wantExpiry := fx.now.Add(time.Hour)
	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.MatchedBy(func(account *entity.Account) bool {
			return account.WorkspaceID == workspaceID &&
				account.Platform == platform &&
				account.Nickname == "Sneaker Head" &&
				account.AccessToken == "act" &&
				*account.OwnerID == "user-1" &&
				account.ExpiresAt.Equal(wantExpiry)
		})).
		Return(nil)
	fx.tokenRepo.EXPECT().
		UpsertToken(ctx, mock.MatchedBy(func(token *entity.Token) bool {
			return token.WorkspaceID == workspaceID &&
				token.ExternalAccountID == "open-1" &&
				token.RefreshToken == "rft" &&
				token.Scope == "video.publish" &&
				token.ExpiresAt != nil && token.ExpiresAt.Equal(wantExpiry)
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountLinked(ctx, mock.MatchedBy(func(event *service.AccountLinkedEvent) bool {
			return event.WorkspaceID == workspaceID.String() && event.Platform == "tiktok"
		})).
		Return(nil)

	redirect, err := fx.service.CompleteLink(ctx, platform, &usecase.CallbackParams{Code: "code-1", State: "signed"})

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/folder.html?id="+workspaceID.String(), redirect)
}

func TestOAuthService_CompleteLink_ProviderErrorSkipsExchange(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()

	fx.expectAdapter(entity.PlatformYouTube)
	fx.codec.EXPECT().Decode("state").Return(entity.LinkState{WorkspaceID: uuid.NewString()})

	_, err := fx.service.CompleteLink(ctx, entity.PlatformYouTube, &usecase.CallbackParams{
		State:            "state",
		Error:            "access_denied",
		ErrorDescription: "The user denied access",
	})

	var exchangeErr *domainerrors.ProviderExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, "The user denied access", exchangeErr.Message())
}

func TestOAuthService_CompleteLink_MissingCode(t *testing.T) {
	fx := createTestOAuthService(t, false)

	fx.expectAdapter(entity.PlatformYouTube)
	fx.codec.EXPECT().Decode("").Return(entity.LinkState{})

	_, err := fx.service.CompleteLink(context.Background(), entity.PlatformYouTube, &usecase.CallbackParams{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestOAuthService_CompleteLink_RoutePlatformWins(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()
	statePlatform := entity.PlatformFacebook

	fx.expectAdapter(entity.PlatformYouTube)
	fx.codec.EXPECT().Decode("s").Return(entity.LinkState{WorkspaceID: workspaceID.String(), Platform: &statePlatform})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.adapter.EXPECT().ExchangeCode(ctx, "c").Return(&service.ExchangeResult{AccessToken: "at", Nickname: "Linked YouTube"}, nil)
	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.MatchedBy(func(account *entity.Account) bool {
			return account.Platform == entity.PlatformYouTube
		})).
		Return(nil)
	fx.tokenRepo.EXPECT().UpsertToken(ctx, mock.AnythingOfType("*entity.Token")).Return(nil)
	fx.publisher.EXPECT().PublishAccountLinked(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CompleteLink(ctx, entity.PlatformYouTube, &usecase.CallbackParams{Code: "c", State: "s"})

	require.NoError(t, err)
}

func TestOAuthService_CompleteLink_ExchangeFails(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformTikTok)
	fx.codec.EXPECT().Decode("s").Return(entity.LinkState{WorkspaceID: workspaceID.String()})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.adapter.EXPECT().ExchangeCode(ctx, "used").
		Return(nil, domainerrors.NewProviderExchangeError("tiktok", "Code has been used", 400, nil))

	_, err := fx.service.CompleteLink(ctx, entity.PlatformTikTok, &usecase.CallbackParams{Code: "used", State: "s"})

	var exchangeErr *domainerrors.ProviderExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, "Code has been used", exchangeErr.Message())
}

func TestOAuthService_CompleteLink_WorkspaceGone(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformTikTok)
	fx.codec.EXPECT().Decode("s").Return(entity.LinkState{WorkspaceID: workspaceID.String()})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(nil, repository.ErrWorkspaceNotFound)

	_, err := fx.service.CompleteLink(ctx, entity.PlatformTikTok, &usecase.CallbackParams{Code: "c", State: "s"})

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestOAuthService_CompleteLink_PersistFailureAttemptsBothWrites(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformYouTube)
	fx.codec.EXPECT().Decode("s").Return(entity.LinkState{WorkspaceID: workspaceID.String()})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.adapter.EXPECT().ExchangeCode(ctx, "c").Return(&service.ExchangeResult{AccessToken: "at", ExternalAccountID: "UC1"}, nil)
	fx.accountRepo.EXPECT().CreateAccount(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.tokenRepo.EXPECT().UpsertToken(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CompleteLink(ctx, entity.PlatformYouTube, &usecase.CallbackParams{Code: "c", State: "s"})

	var persistenceErr *domainerrors.PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
}

func TestOAuthService_CompleteLink_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestOAuthService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.expectAdapter(entity.PlatformYouTube)
	fx.codec.EXPECT().Decode("s").Return(entity.LinkState{WorkspaceID: workspaceID.String()})
	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, (*string)(nil)).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.adapter.EXPECT().ExchangeCode(ctx, "c").Return(&service.ExchangeResult{AccessToken: "at"}, nil)
	fx.accountRepo.EXPECT().CreateAccount(ctx, mock.Anything).Return(nil)
	fx.tokenRepo.EXPECT().UpsertToken(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAccountLinked(ctx, mock.Anything).Return(errors.New("broker down"))

	redirect, err := fx.service.CompleteLink(ctx, entity.PlatformYouTube, &usecase.CallbackParams{Code: "c", State: "s"})

	require.NoError(t, err)
	assert.Contains(t, redirect, workspaceID.String())
}
