package impl

import (
	"context"
	"testing"
	"time"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	mockRepo "multipost/internal/mocks/repository"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	workspaceRepo *mockRepo.MockWorkspaceRepository
	accountRepo   *mockRepo.MockAccountRepository
	tokenRepo     *mockRepo.MockTokenRepository
}

func createTestAccountService(t *testing.T, multiTenant bool) accountServiceFixtures {
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	service := NewAccountService(AccountServiceParams{
		WorkspaceRepo: workspaceRepo,
		AccountRepo:   accountRepo,
		TokenRepo:     tokenRepo,
		Config:        newTestConfig(multiTenant),
		Logger:        newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:       service,
		workspaceRepo: workspaceRepo,
		accountRepo:   accountRepo,
		tokenRepo:     tokenRepo,
	}
}

func TestAccountService_ListAccounts_SingleTenant(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()
	accounts := []*entity.Account{
		{ID: uuid.New(), WorkspaceID: workspaceID, Platform: entity.PlatformTikTok},
		{ID: uuid.New(), WorkspaceID: workspaceID, Platform: entity.PlatformTikTok},
	}

	fx.accountRepo.EXPECT().ListAccountsByWorkspace(ctx, workspaceID).Return(accounts, nil)

	result, err := fx.service.ListAccounts(ctx, workspaceID, "")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAccountService_ListAccounts_MultiTenantForeignFolder(t *testing.T) {
	fx := createTestAccountService(t, true)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, strPtr("intruder")).Return(nil, repository.ErrWorkspaceNotFound)

	_, err := fx.service.ListAccounts(ctx, workspaceID, "intruder")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestAccountService_DeleteAccount(t *testing.T) {
	fx := createTestAccountService(t, true)
	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().DeleteAccount(ctx, accountID, strPtr("user-1")).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, accountID, "user-1"))
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().DeleteAccount(ctx, accountID, (*string)(nil)).Return(repository.ErrAccountNotFound)

	err := fx.service.DeleteAccount(ctx, accountID, "")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ListTokens_StripsCredentials(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()
	workspaceID := uuid.New()
	platform := entity.PlatformYouTube
	expiresAt := time.Now().Add(time.Hour)

	fx.tokenRepo.EXPECT().ListTokens(ctx, workspaceID, &platform).Return([]*entity.Token{{
		WorkspaceID:       workspaceID,
		Platform:          platform,
		ExternalAccountID: "UC1",
		AccessToken:       "secret",
		RefreshToken:      "refresh",
		ExpiresAt:         &expiresAt,
	}}, nil)

	summaries, err := fx.service.ListTokens(ctx, workspaceID, &platform, "")

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "UC1", summaries[0].ExternalAccountID)
	assert.True(t, summaries[0].HasRefreshToken)
}

func TestAccountService_DeleteToken(t *testing.T) {
	fx := createTestAccountService(t, true)
	ctx := context.Background()
	workspaceID := uuid.New()

	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, workspaceID, strPtr("user-1")).Return(&entity.Workspace{ID: workspaceID}, nil)
	fx.tokenRepo.EXPECT().DeleteToken(ctx, workspaceID, entity.PlatformTikTok, "open-1").Return(nil)

	require.NoError(t, fx.service.DeleteToken(ctx, workspaceID, entity.PlatformTikTok, "open-1", "user-1"))
}

func TestAccountService_DeleteToken_RequiresExternalAccount(t *testing.T) {
	fx := createTestAccountService(t, false)

	err := fx.service.DeleteToken(context.Background(), uuid.New(), entity.PlatformTikTok, " ", "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}
